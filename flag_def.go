package cliargs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mikeschinkel/go-dt"
)

// FlagType represents the Go type a FlagDef binds to
type FlagType int

const (
	UnknownFlagType FlagType = iota
	StringFlag
	BoolFlag
	IntFlag
	Int64Flag
)

func (ft FlagType) String() string {
	switch ft {
	case StringFlag:
		return "string"
	case BoolFlag:
		return "bool"
	case IntFlag:
		return "int"
	case Int64Flag:
		return "int64"
	case UnknownFlagType:
	}
	return "unknown"
}

var flagNameRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// FlagDef binds one flag of a Table to a Go variable. Exactly one of
// String, Bool, Int or Int64 must be non-nil.
type FlagDef struct {
	Name     string
	Shortcut byte // optional one-letter alias, e.g. 'v' for -v
	Default  any
	Usage    string
	String   *string
	Bool     *bool
	Int64    *int64
	Int      *int
	Example  string // OPTIONAL: sample value for usage output (e.g., "www")
}

func (fd *FlagDef) Type() (ft FlagType) {
	switch {
	case fd.String != nil:
		return StringFlag
	case fd.Bool != nil:
		return BoolFlag
	case fd.Int != nil:
		return IntFlag
	case fd.Int64 != nil:
		return Int64Flag
	}
	return UnknownFlagType
}

// Validate checks the definition itself, not any parsed value.
func (fd *FlagDef) Validate() (err error) {
	var errs []error
	var types []string

	switch {
	case fd.Name == "":
		errs = append(errs, dt.NewErr(dt.ErrEmpty, "empty_property", "Name"))
	case !flagNameRegex.MatchString(fd.Name):
		errs = append(errs, dt.NewErr(dt.ErrInvalidFlagName, "rule", "may contain only lowercase letters, numbers, and dashes"))
	}

	if fd.String != nil {
		types = append(types, StringFlag.String())
	}
	if fd.Bool != nil {
		types = append(types, BoolFlag.String())
	}
	if fd.Int != nil {
		types = append(types, IntFlag.String())
	}
	if fd.Int64 != nil {
		types = append(types, Int64Flag.String())
	}
	rule := "exactly one property of .String, .Bool, .Int, or .Int64 must be non-nil"
	switch len(types) {
	case 0:
		errs = append(errs, dt.NewErr(ErrFlagTypeNotDiscoverable, "rule", rule))
	case 1:
	default:
		errs = append(errs, dt.NewErr(ErrFlagTypeNotDiscoverable, "rule", rule, "duplicates", strings.Join(types, ", ")))
	}

	if strings.TrimSpace(fd.Usage) == "" {
		errs = append(errs, dt.NewErr(dt.ErrEmpty, "empty_property", "Usage"))
	}

	err = dt.CombineErrs(errs)
	if err != nil {
		err = dt.WithErr(err, dt.ErrFlagValidationFailed, "flag_name", fd.Name)
	}
	return err
}

// lookupName picks the long name unless only the shortcut was given.
func (fd *FlagDef) lookupName(t *Table) string {
	if t.IsArgSet(fd.Name) || fd.Shortcut == 0 {
		return fd.Name
	}
	short := string(fd.Shortcut)
	if t.IsArgSet(short) {
		return short
	}
	return fd.Name
}

// Bind assigns the flag's value from t, falling back to Default.
func (fd *FlagDef) Bind(t *Table) (err error) {
	name := fd.lookupName(t)

	switch fd.Type() {
	case StringFlag:
		*fd.String = t.GetArg(name, defaultAs[string](fd.Default))
	case BoolFlag:
		*fd.Bool = t.GetBoolArg(name, defaultAs[bool](fd.Default))
	case IntFlag:
		*fd.Int = int(t.GetIntArg(name, int64(defaultAs[int](fd.Default))))
	case Int64Flag:
		def, ok := fd.Default.(int64)
		if !ok {
			def = int64(defaultAs[int](fd.Default))
		}
		*fd.Int64 = t.GetIntArg(name, def)
	case UnknownFlagType:
		err = dt.NewErr(ErrFlagTypeNotDiscoverable, "flag_name", fd.Name)
	}
	return err
}

// Synopsis renders the flag for usage output, e.g. "-v, --verbosity=1".
func (fd *FlagDef) Synopsis() string {
	var sb strings.Builder
	if fd.Shortcut != 0 {
		sb.WriteString(fmt.Sprintf("-%c, ", fd.Shortcut))
	}
	sb.WriteString("--")
	sb.WriteString(fd.Name)
	val := fd.Example
	if val == "" && fd.Default != nil && fd.Type() != BoolFlag {
		val = fmt.Sprintf("%v", fd.Default)
	}
	if val != "" {
		sb.WriteByte('=')
		sb.WriteString(val)
	}
	return sb.String()
}
