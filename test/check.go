package test

import (
	"fmt"
	"strings"

	"github.com/mikeschinkel/go-cliargs"
)

// checkTable parses args and verifies the table invariants: canonical
// keys, deterministic rebuilds and stable accessor results.
func checkTable(args []string) error {
	first := cliargs.ParseParameters(args)
	second := cliargs.ParseParameters(args)
	if first.String() != second.String() {
		return fmt.Errorf("non-deterministic parse of %q: %s vs %s", args, first, second)
	}

	for _, name := range first.Names() {
		if !strings.HasPrefix(name, "-") || strings.HasPrefix(name, "--") {
			return fmt.Errorf("non-canonical key %q from %q", name, args)
		}
		if first.GetBoolArg(name, false) != first.GetBoolArg(name, true) {
			return fmt.Errorf("present flag %q read its default from %q", name, args)
		}
		if first.GetArg(name, "x") != first.GetArg(name, "x") {
			return fmt.Errorf("unstable read of %q from %q", name, args)
		}
	}
	if first.GetBoolArg("-never-given-flag", true) != true {
		return fmt.Errorf("absent flag did not return default")
	}
	return nil
}
