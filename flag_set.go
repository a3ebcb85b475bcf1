package cliargs

import (
	"fmt"
	"strings"

	"github.com/mikeschinkel/go-dt"
)

// FlagSet is a named group of FlagDefs bound together from one Table.
type FlagSet struct {
	Name     string
	FlagDefs []FlagDef
}

func (fs *FlagSet) FlagNames() (names []string) {
	names = make([]string, len(fs.FlagDefs))
	for i, fd := range fs.FlagDefs {
		names[i] = fd.Name
	}
	return names
}

// Validate checks every FlagDef and rejects duplicate names or shortcuts.
func (fs *FlagSet) Validate() error {
	var errs []error
	names := make(map[string]struct{}, len(fs.FlagDefs))
	shortcuts := make(map[byte]string)

	for i := range fs.FlagDefs {
		fd := &fs.FlagDefs[i]
		errs = dt.AppendErr(errs, fd.Validate())
		if _, ok := names[fd.Name]; ok {
			errs = append(errs, dt.NewErr(dt.ErrInvalidDuplicateFlag, "flag_name", fd.Name, "flag_set", fs.Name))
		}
		names[fd.Name] = struct{}{}
		if fd.Shortcut == 0 {
			continue
		}
		if other, ok := shortcuts[fd.Shortcut]; ok {
			errs = append(errs, dt.NewErr(dt.ErrInvalidDuplicateFlag, "shortcut", string(fd.Shortcut), "flag_name", fd.Name, "conflicts_with", other))
		}
		shortcuts[fd.Shortcut] = fd.Name
	}
	return dt.CombineErrs(errs)
}

// Bind assigns every FlagDef in the set from t. Flags missing from t get
// their Default.
func (fs *FlagSet) Bind(t *Table) (err error) {
	var errs []error

	err = fs.Validate()
	if err != nil {
		goto end
	}
	for i := range fs.FlagDefs {
		errs = dt.AppendErr(errs, fs.FlagDefs[i].Bind(t))
	}
	err = dt.CombineErrs(errs)
end:
	if err != nil {
		err = dt.WithErr(err, ErrFlagBindingFailed, "flag_set", fs.Name)
	}
	return err
}

// Usage lists each flag with its description, one per line.
func (fs *FlagSet) Usage() string {
	var sb strings.Builder
	width := 0
	synopses := make([]string, len(fs.FlagDefs))
	for i := range fs.FlagDefs {
		synopses[i] = fs.FlagDefs[i].Synopsis()
		width = max(width, len(synopses[i]))
	}
	for i, fd := range fs.FlagDefs {
		sb.WriteString(fmt.Sprintf("  %-*s  %s\n", width, synopses[i], fd.Usage))
	}
	return sb.String()
}
