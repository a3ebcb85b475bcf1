package cliargs

import (
	"github.com/google/shlex"
	"github.com/mikeschinkel/go-dt"
)

// ParseCommandLine splits a shell-style command line and parses the
// resulting words. The line must not include the program name.
func ParseCommandLine(line string) (t *Table, err error) {
	var args []string

	args, err = shlex.Split(line)
	if err != nil {
		err = dt.NewErr(ErrCommandLineSplitFailed, "command_line", line, err)
		goto end
	}
	t = ParseParameters(args)
end:
	return t, err
}
