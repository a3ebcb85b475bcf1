package cliargs

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// bufferPair is shared between a BufferedWriter and the writers derived
// from it through Loud, V2 and V3.
type bufferPair struct {
	mu     sync.RWMutex
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// BufferedWriter implements Writer and captures all output in memory for
// tests.
type BufferedWriter struct {
	buf       *bufferPair
	quiet     bool
	verbosity Verbosity
	useLevel  Verbosity
}

var _ Writer = (*BufferedWriter)(nil)

// NewBufferedWriter creates a BufferedWriter at maximum verbosity.
func NewBufferedWriter() *BufferedWriter {
	return NewBufferedWriterWithVerbosity(HighVerbosity)
}

// NewBufferedWriterWithVerbosity creates a BufferedWriter at the given
// verbosity (1-3).
func NewBufferedWriterWithVerbosity(verbosity Verbosity) *BufferedWriter {
	if verbosity < LowVerbosity || verbosity > HighVerbosity {
		panic(fmt.Sprintf("Invalid verbosity for BufferedWriter; must be between 1-3; got %d", verbosity))
	}
	return &BufferedWriter{
		buf:       &bufferPair{},
		verbosity: verbosity,
		useLevel:  LowVerbosity,
	}
}

func (w *BufferedWriter) Printf(format string, args ...any) {
	if w.quiet || w.verbosity < w.useLevel {
		return
	}
	w.buf.mu.Lock()
	defer w.buf.mu.Unlock()
	_, _ = fmt.Fprintf(&w.buf.stdout, format, args...)
}

func (w *BufferedWriter) Errorf(format string, args ...any) {
	w.buf.mu.Lock()
	defer w.buf.mu.Unlock()
	_, _ = fmt.Fprintf(&w.buf.stderr, format, flattenErrs(args)...)
}

func (w *BufferedWriter) derive(level Verbosity, quiet bool) Writer {
	return &BufferedWriter{
		buf:       w.buf,
		quiet:     quiet,
		verbosity: w.verbosity,
		useLevel:  level,
	}
}

func (w *BufferedWriter) Loud() Writer { return w.derive(w.useLevel, false) }
func (w *BufferedWriter) V2() Writer   { return w.derive(MediumVerbosity, w.quiet) }
func (w *BufferedWriter) V3() Writer   { return w.derive(HighVerbosity, w.quiet) }

// Writer exposes the stdout buffer. Writes through it bypass quiet and
// verbosity.
func (w *BufferedWriter) Writer() io.Writer {
	return &lockedBuffer{mu: &w.buf.mu, b: &w.buf.stdout}
}

func (w *BufferedWriter) ErrWriter() io.Writer {
	return &lockedBuffer{mu: &w.buf.mu, b: &w.buf.stderr}
}

// SetQuiet sets the quiet mode (suppresses all Printf output)
func (w *BufferedWriter) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Stdout returns everything written to stdout so far.
func (w *BufferedWriter) Stdout() string {
	w.buf.mu.RLock()
	defer w.buf.mu.RUnlock()
	return w.buf.stdout.String()
}

// Stderr returns everything written to stderr so far.
func (w *BufferedWriter) Stderr() string {
	w.buf.mu.RLock()
	defer w.buf.mu.RUnlock()
	return w.buf.stderr.String()
}

// StdoutLines returns the non-empty stdout lines.
func (w *BufferedWriter) StdoutLines() []string {
	return nonEmptyLines(w.Stdout())
}

// StderrLines returns the non-empty stderr lines.
func (w *BufferedWriter) StderrLines() []string {
	return nonEmptyLines(w.Stderr())
}

// Reset clears both buffers.
func (w *BufferedWriter) Reset() {
	w.buf.mu.Lock()
	defer w.buf.mu.Unlock()
	w.buf.stdout.Reset()
	w.buf.stderr.Reset()
}

func nonEmptyLines(s string) (lines []string) {
	lines = []string{}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

type lockedBuffer struct {
	mu *sync.RWMutex
	b  *bytes.Buffer
}

func (lb *lockedBuffer) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.b.Write(p)
}
