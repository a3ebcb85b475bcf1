package test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mikeschinkel/go-cliargs"
)

// FuzzParseParameters feeds whitespace-separated argument lists through
// the parser and checks the invariants every table must hold.
func FuzzParseParameters(f *testing.F) {
	seeds := []string{
		"",
		"-wip",
		"-wip=0",
		"-nowip",
		"-wip -nowip",
		"-nowip -wip",
		"-wip=1 -nowip=1",
		"--wip=verbose --bar=1",
		"-wip=NaN -bar=NotANumber",
		"-wip= positional ---x -= -no",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		args := strings.Fields(line)
		if err := checkTable(args); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzGetIntArg ensures integer reads never panic and fall back to 0, not
// the default, for anything that was set.
func FuzzGetIntArg(f *testing.F) {
	for _, seed := range []string{"11", "", "NaN", "-5", "9223372036854775808", "0x10"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, value string) {
		table := cliargs.ParseParameters([]string{"-n=" + value})
		got := table.GetIntArg("-n", 42)
		if got != 42 {
			return
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n != 42 {
			t.Fatalf("GetIntArg returned the default for present value %q", value)
		}
	})
}
