package cliargs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mikeschinkel/go-dt"
)

// Writer is the user-facing output channel, separate from the slog logger.
type Writer interface {
	Printf(string, ...any)
	Errorf(string, ...any)
	Loud() Writer
	V2() Writer
	V3() Writer
	Writer() io.Writer
	ErrWriter() io.Writer
}

var _ Writer = (*cliWriter)(nil)

// cliWriter writes to stdout/stderr, honoring quiet and verbosity.
type cliWriter struct {
	writer    io.Writer
	errWriter io.Writer
	quiet     bool
	useLevel  Verbosity
	verbosity Verbosity
}

type WriterArgs struct {
	Quiet     bool
	Verbosity Verbosity
	Stdout    io.Writer // defaults to os.Stdout
	Stderr    io.Writer // defaults to os.Stderr
}

// NewWriter creates a console Writer. A nil args means verbosity 1.
//
//goland:noinspection GoUnusedExportedFunction
func NewWriter(args *WriterArgs) Writer {
	if args == nil {
		args = &WriterArgs{Verbosity: LowVerbosity}
	}
	if args.Verbosity < LowVerbosity || HighVerbosity < args.Verbosity {
		panic(fmt.Sprintf("Invalid verbosity for cliargs.NewWriter(); must be between 1-3; got %d", args.Verbosity))
	}
	return &cliWriter{
		writer:    args.Stdout,
		errWriter: args.Stderr,
		quiet:     args.Quiet,
		verbosity: args.Verbosity,
		useLevel:  LowVerbosity,
	}
}

// NewWriterFromOptions builds a Writer that follows -quiet and -verbosity.
// Verbosity 0 is treated as quiet.
func NewWriterFromOptions(opts *CLIOptions) Writer {
	v := opts.Verbosity()
	quiet := opts.Quiet() || v == NoVerbosity
	if v < LowVerbosity {
		v = LowVerbosity
	}
	return NewWriter(&WriterArgs{Quiet: quiet, Verbosity: v})
}

func (w *cliWriter) Writer() io.Writer {
	if w.writer == nil {
		return os.Stdout
	}
	return w.writer
}

func (w *cliWriter) ErrWriter() io.Writer {
	if w.errWriter == nil {
		return os.Stderr
	}
	return w.errWriter
}

func (w *cliWriter) at(level Verbosity, quiet bool) Writer {
	c := *w
	c.useLevel = level
	c.quiet = quiet
	return &c
}

func (w *cliWriter) V2() Writer   { return w.at(MediumVerbosity, w.quiet) }
func (w *cliWriter) V3() Writer   { return w.at(HighVerbosity, w.quiet) }
func (w *cliWriter) Loud() Writer { return w.at(w.useLevel, false) }

// Printf writes to stdout unless quiet or below the writer's level.
func (w *cliWriter) Printf(format string, args ...any) {
	if w.quiet || w.verbosity < w.useLevel {
		return
	}
	Stdiof(w.Writer(), format, args...)
}

// Errorf writes to stderr regardless of quiet.
func (w *cliWriter) Errorf(format string, args ...any) {
	Stdiof(w.ErrWriter(), format, flattenErrs(args)...)
}

// flattenErrs replaces newlines in error arguments with semicolons so a
// joined error prints on one line.
func flattenErrs(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		err, ok := arg.(error)
		if !ok {
			out[i] = arg
			continue
		}
		out[i] = strings.ReplaceAll(err.Error(), "\n", "; ")
	}
	return out
}

// Package-level output variables and synchronization
var (
	writer   Writer = NewWriter(nil)
	writerMu sync.RWMutex
)

// SetWriter sets the package Writer. A nil w restores the console default.
func SetWriter(w Writer) {
	writerMu.Lock()
	defer writerMu.Unlock()
	if w == nil {
		w = NewWriter(nil)
	}
	writer = w
}

//goland:noinspection GoUnusedExportedFunction
func GetWriter() Writer {
	writerMu.RLock()
	defer writerMu.RUnlock()
	return writer
}

func Printf(format string, args ...any) {
	GetWriter().Printf(format, args...)
}

func Errorf(format string, args ...any) {
	GetWriter().Errorf(format, args...)
}

func Stdoutf(format string, args ...any) {
	Stdiof(os.Stdout, format, args...)
}
func Stderrf(format string, args ...any) {
	Stdiof(os.Stderr, format, args...)
}
func Stdiof(w io.Writer, format string, args ...any) {
	_, err := fmt.Fprintf(w, format, args...)
	dt.LogOnError(err)
}

func init() {
	RegisterInitializerFunc(func(args InitializerArgs) error {
		if args.Writer != nil {
			SetWriter(args.Writer)
		}
		return nil
	})
}
