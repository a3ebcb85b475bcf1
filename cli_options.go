package cliargs

import (
	"strconv"
	"time"

	"github.com/mikeschinkel/go-dt"
	"github.com/mikeschinkel/go-dt/dtx"
)

const (
	DefaultTimeout   = 3
	DefaultQuiet     = false
	DefaultDryRun    = false
	DefaultForce     = false
	DefaultVerbosity = int(LowVerbosity)
)

// Options is implemented by any host options type that embeds or wraps
// CLIOptions.
type Options interface {
	Options()
}

// TableGetter is implemented by options that remember the Table they were
// bound from.
type TableGetter interface {
	Table() *Table
}

var _ Options = (*CLIOptions)(nil)
var _ TableGetter = (*CLIOptions)(nil)

//goland:noinspection GoUnusedExportedFunction
func GetCLIOptions() *CLIOptions {
	return options
}

var options = &CLIOptions{
	timeoutArg: new(string),
	quiet:      new(bool),
	verbosity:  new(int),
	dryRun:     new(bool),
	force:      new(bool),
}

type CLIOptions struct {
	timeout    time.Duration
	timeoutArg *string // raw -timeout value: seconds or a Go duration
	quiet      *bool
	verbosity  *int
	dryRun     *bool
	force      *bool
	table      *Table
}

func (o *CLIOptions) Options() {}

type CLIOptionsArgs struct {
	Quiet     *bool
	Verbosity *int
	Timeout   *int
	DryRun    *bool
	Force     *bool
}

// NewCLIOptions creates a CLIOptions instance from raw values, e.g. when
// options come from somewhere other than the command line. Nil values use
// the corresponding defaults.
func NewCLIOptions(args CLIOptionsArgs) (*CLIOptions, error) {
	verbosity := valueOrDefault(args.Verbosity, DefaultVerbosity)
	v, err := ParseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}

	return &CLIOptions{
		quiet:     ptr(valueOrDefault(args.Quiet, DefaultQuiet)),
		verbosity: ptr(int(v)),
		timeout:   time.Duration(valueOrDefault(args.Timeout, DefaultTimeout)) * time.Second,
		dryRun:    ptr(valueOrDefault(args.DryRun, DefaultDryRun)),
		force:     ptr(valueOrDefault(args.Force, DefaultForce)),
		table:     emptyTable,
	}, nil
}

func (o *CLIOptions) Timeout() time.Duration {
	return o.timeout
}
func (o *CLIOptions) Quiet() bool {
	return *o.quiet
}
func (o *CLIOptions) Verbosity() Verbosity {
	return Verbosity(*o.verbosity)
}
func (o *CLIOptions) DryRun() bool {
	return *o.dryRun
}
func (o *CLIOptions) Force() bool {
	return *o.force
}

// Table returns the Table the options were bound from.
func (o *CLIOptions) Table() *Table {
	if o.table == nil {
		return emptyTable
	}
	return o.table
}

// OptionsTable returns the Table behind any Options value that keeps one.
func OptionsTable(opts Options) (t *Table, err error) {
	var getter TableGetter

	getter, err = dtx.AssertType[TableGetter](opts)
	if err != nil {
		goto end
	}
	t = getter.Table()
end:
	return t, err
}

//goland:noinspection GoUnusedExportedFunction
func GetFlagSet() *FlagSet {
	return flagset
}

var flagset = &FlagSet{
	Name: "global",
	FlagDefs: []FlagDef{
		{
			Name:     "verbosity",
			Shortcut: 'v',
			Default:  DefaultVerbosity,
			Usage:    "Verbosity of most command line output (0 to 3, default 1)",
			Int:      options.verbosity,
		},
		{
			Name:     "quiet",
			Shortcut: 'q',
			Default:  DefaultQuiet,
			Usage:    "Disable display of most command line output",
			Bool:     options.quiet,
		},
		{
			Name:     "timeout",
			Shortcut: 't',
			Default:  strconv.Itoa(DefaultTimeout),
			Usage:    "Timeout in seconds, or as a duration such as 90s or 10m",
			Example:  "10m",
			String:   options.timeoutArg,
		},
		{
			Name:    "dry-run",
			Default: DefaultDryRun,
			Usage:   "Show what command results will be if command is run",
			Bool:    options.dryRun,
		},
		{
			Name:     "force",
			Shortcut: 'f',
			Default:  DefaultForce,
			Usage:    "Force the action even if warnings",
			Bool:     options.force,
		},
	},
}

// AddCLIOption registers an extra global flag, bound on every
// ParseCLIOptions call.
func AddCLIOption(flagDef FlagDef) (err error) {
	var existing FlagDef

	err = flagDef.Validate()
	if err != nil {
		goto end
	}
	for _, existing = range flagset.FlagDefs {
		if existing.Name == flagDef.Name {
			err = dt.NewErr(dt.ErrInvalidDuplicateFlag, "flag_name", flagDef.Name, "where", "global flags")
			goto end
		}
	}
	flagset.FlagDefs = append(flagset.FlagDefs, flagDef)
end:
	return err
}

// ParseCLIOptions parses osArgs into the process-wide Table and binds the
// global flags from it.
//
// Expects os.Args as input; the program name is stripped.
func ParseCLIOptions(osArgs []string) (_ *CLIOptions, t *Table, err error) {
	var errs []error
	var timeout time.Duration
	var verbosity Verbosity

	t = ParseOSArgs(osArgs)
	options.table = t

	err = flagset.Bind(t)
	if err != nil {
		goto end
	}

	timeout, err = dt.ParseTimeDurationEx(*options.timeoutArg)
	if err != nil {
		errs = append(errs, dt.NewErr(ErrInvalidTimeout, "timeout", *options.timeoutArg, err))
		timeout = DefaultTimeout * time.Second
	}
	options.timeout = timeout

	verbosity, err = ParseVerbosity(*options.verbosity)
	errs = dt.AppendErr(errs, err)
	if err == nil {
		*options.verbosity = int(verbosity)
	}

	err = dt.CombineErrs(errs)
end:
	if err != nil {
		err = dt.WithErr(ErrOptionsParsingFailed, err)
	}
	return options, t, err
}
