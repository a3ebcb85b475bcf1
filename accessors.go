package cliargs

import (
	"strconv"
)

// GetArg returns the string value of name, or def when name is absent. A
// flag given without a value, or with an explicit empty value, returns "".
func (t *Table) GetArg(name string, def string) string {
	e, ok := t.Entry(name)
	if !ok {
		return def
	}
	return e.Value
}

// GetIntArg returns the base-10 integer value of name, or def when name is
// absent. A present value that does not parse, including the no-value
// marker, yields 0 rather than def.
// The whole value must be an integer: "5x" and " 5" both read as 0.
func (t *Table) GetIntArg(name string, def int64) (n int64) {
	var err error

	e, ok := t.Entry(name)
	if !ok {
		n = def
		goto end
	}
	n, err = strconv.ParseInt(e.Value, 10, 64)
	if err != nil {
		n = 0
	}
end:
	return n
}

// GetBoolArg returns def when name is absent. Otherwise only the value "0"
// reads as false; a flag given without a value reads as true.
func (t *Table) GetBoolArg(name string, def bool) bool {
	e, ok := t.Entry(name)
	if !ok {
		return def
	}
	return truthy(e.Value)
}

// GetArgs returns every value name was given directly, in order. Negated
// forms do not contribute.
func (t *Table) GetArgs(name string) []string {
	values := t.multi[CanonicalName(name)]
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

// SoftSetArg returns a copy of t with name set to value when name is not
// already set. When it is set, t itself is returned along with false.
func (t *Table) SoftSetArg(name string, value string) (_ *Table, set bool) {
	var c *Table

	key := CanonicalName(name)
	if t.IsArgSet(key) {
		c = t
		goto end
	}
	c = t.clone()
	c.set(Entry{Name: key, Value: value, HasValue: true})
	set = true
end:
	return c, set
}

// SoftSetBoolArg is SoftSetArg storing "1" or "0".
func (t *Table) SoftSetBoolArg(name string, value bool) (*Table, bool) {
	if value {
		return t.SoftSetArg(name, "1")
	}
	return t.SoftSetArg(name, "0")
}
