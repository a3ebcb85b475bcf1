package cliargs

import (
	"strings"
)

const (
	flagPrefix     = "-"
	negationPrefix = "no"
	maxDashes      = 2
)

// token is one flag-shaped argument after dash stripping and '=' splitting.
type token struct {
	raw      string
	name     string // without dashes and without the negation prefix
	value    string
	hasValue bool
	negated  bool
}

// key returns the canonical table key the token writes to.
func (tok token) key() string {
	return flagPrefix + tok.name
}

// negatedValue is what a negated token stores for its base flag: the
// boolean inverse of the token's own value.
func (tok token) negatedValue() string {
	if truthy(tok.value) {
		return "0"
	}
	return "1"
}

// parseToken splits a raw argument into a token. ok is false for anything
// that is not shaped like a flag: no leading dash, more than two leading
// dashes, or an empty name.
func parseToken(raw string) (tok token, ok bool) {
	var dashes int
	var body string
	var eq int

	for dashes < len(raw) && raw[dashes] == '-' {
		dashes++
	}
	if dashes == 0 || dashes > maxDashes {
		goto end
	}

	tok.raw = raw
	body = raw[dashes:]
	eq = strings.IndexByte(body, '=')
	switch eq {
	case -1:
		tok.name = body
	default:
		tok.name = body[:eq]
		tok.value = body[eq+1:]
		tok.hasValue = true
	}
	if tok.name == "" {
		goto end
	}

	// A bare -no, or -no-x, has no canonical base to negate and stays a
	// flag of its own.
	if isNegation(tok.name) {
		tok.name = tok.name[len(negationPrefix):]
		tok.negated = true
	}
	ok = true
end:
	return tok, ok
}

func isNegation(name string) bool {
	if len(name) <= len(negationPrefix) || !strings.HasPrefix(name, negationPrefix) {
		return false
	}
	return name[len(negationPrefix)] != '-'
}

// CanonicalName normalizes a flag name for lookup. "wip", "-wip" and
// "--wip" all become "-wip".
func CanonicalName(name string) string {
	name = strings.TrimPrefix(name, flagPrefix)
	name = strings.TrimPrefix(name, flagPrefix)
	return flagPrefix + name
}

// truthy is the boolean reading of a stored value. Only "0" is false; the
// no-value marker (empty string) is true.
func truthy(value string) bool {
	return value != "0"
}
