package cliargs

import (
	"sync/atomic"
)

// emptyTable is what Parameters returns before anything has been parsed.
var emptyTable = newTable()

// current holds the process-wide snapshot. Tables are never mutated after
// construction, so readers only need the atomic load.
var current atomic.Pointer[Table]

// ResetParameters parses args and installs the result as the process-wide
// table, replacing whatever was there.
func ResetParameters(args []string) *Table {
	t := ParseParameters(args)
	current.Store(t)
	return t
}

// ParseOSArgs is ResetParameters for os.Args, which still carries the
// program name.
func ParseOSArgs(osArgs []string) *Table {
	var args []string
	if len(osArgs) > 0 {
		args = osArgs[1:]
	}
	return ResetParameters(args)
}

// SetParameters installs t as the process-wide table. A nil t clears it.
func SetParameters(t *Table) {
	current.Store(t)
}

// Parameters returns the process-wide table. It is never nil.
func Parameters() *Table {
	t := current.Load()
	if t == nil {
		t = emptyTable
	}
	return t
}

func GetArg(name string, def string) string {
	return Parameters().GetArg(name, def)
}

func GetIntArg(name string, def int64) int64 {
	return Parameters().GetIntArg(name, def)
}

func GetBoolArg(name string, def bool) bool {
	return Parameters().GetBoolArg(name, def)
}

func GetArgs(name string) []string {
	return Parameters().GetArgs(name)
}

func IsArgSet(name string) bool {
	return Parameters().IsArgSet(name)
}

// SoftSetArg sets name on the process-wide table if it is not already set.
// The swap retries if another goroutine replaced the table concurrently.
func SoftSetArg(name string, value string) (set bool) {
	for {
		old := current.Load()
		base := old
		if base == nil {
			base = emptyTable
		}
		var next *Table
		next, set = base.SoftSetArg(name, value)
		if !set || current.CompareAndSwap(old, next) {
			return set
		}
	}
}

// SoftSetBoolArg is SoftSetArg storing "1" or "0".
func SoftSetBoolArg(name string, value bool) bool {
	if value {
		return SoftSetArg(name, "1")
	}
	return SoftSetArg(name, "0")
}
