package cliargs

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Entry is the resolved state of one canonical flag.
type Entry struct {
	Name     string
	Value    string
	HasValue bool // false for a flag given without "=value"
}

// String renders the entry the way it could be passed on a command line.
func (e Entry) String() string {
	if !e.HasValue {
		return e.Name
	}
	return e.Name + "=" + e.Value
}

// Table is an immutable snapshot of parsed flags, ordered by the first
// occurrence of each canonical name.
type Table struct {
	entries *orderedmap.OrderedMap // canonical name -> Entry
	multi   map[string][]string    // canonical name -> every direct value
}

func newTable() *Table {
	return &Table{
		entries: orderedmap.New(),
		multi:   make(map[string][]string),
	}
}

// ParseParameters builds a Table from args, which must not include the
// program name.
//
// Direct flags are applied in order so the last occurrence wins. A negated
// flag (-nofoo) sets -foo to the inverse of its own value, but only when
// -foo never appears directly anywhere in args.
func ParseParameters(args []string) *Table {
	var tok token
	var ok bool
	var raw string

	t := newTable()
	toks := make([]token, 0, len(args))
	direct := make(map[string]struct{}, len(args))

	for _, raw = range args {
		tok, ok = parseToken(raw)
		if !ok {
			logger.Debug("Ignoring non-flag argument", "argument", raw)
			continue
		}
		toks = append(toks, tok)
		if !tok.negated {
			direct[tok.key()] = struct{}{}
		}
	}

	for _, tok = range toks {
		key := tok.key()
		if !tok.negated {
			t.set(Entry{Name: key, Value: tok.value, HasValue: tok.hasValue})
			t.multi[key] = append(t.multi[key], tok.value)
			continue
		}
		if _, ok = direct[key]; ok {
			logger.Debug("Negated flag overridden by direct flag", "argument", tok.raw, "flag", key)
			continue
		}
		t.set(Entry{Name: key, Value: tok.negatedValue(), HasValue: true})
	}
	return t
}

func (t *Table) set(e Entry) {
	t.entries.Set(e.Name, e)
}

func (t *Table) clone() *Table {
	c := newTable()
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		c.entries.Set(pair.Key, pair.Value)
	}
	for name, values := range t.multi {
		c.multi[name] = append([]string(nil), values...)
	}
	return c
}

// Entry returns the resolved entry for name.
func (t *Table) Entry(name string) (e Entry, ok bool) {
	var v any

	v, ok = t.entries.Get(CanonicalName(name))
	if !ok {
		goto end
	}
	e = v.(Entry)
end:
	return e, ok
}

// IsArgSet reports whether name resolved to any entry, direct or negated.
func (t *Table) IsArgSet(name string) bool {
	_, ok := t.entries.Get(CanonicalName(name))
	return ok
}

// Len returns the number of distinct canonical flags.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Names returns the canonical flag names in order of first occurrence.
func (t *Table) Names() []string {
	names := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

// Entries returns every resolved entry in order of first occurrence.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, pair.Value.(Entry))
	}
	return entries
}

func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{")
	for i, e := range t.Entries() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// GoString keeps %#v output readable in test failures.
func (t *Table) GoString() string {
	return fmt.Sprintf("cliargs.%s", t.String())
}
