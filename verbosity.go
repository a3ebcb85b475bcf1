package cliargs

import (
	"errors"

	"github.com/mikeschinkel/go-dt"
)

type Verbosity int

const (
	NoVerbosity Verbosity = iota
	LowVerbosity
	MediumVerbosity
	HighVerbosity
)

var (
	ErrInvalidVerbosity = errors.New("invalid verbosity level")
	ErrVerbosityTooLow  = errors.New("verbosity too low; must be between 0..3 inclusive")
	ErrVerbosityTooHigh = errors.New("verbosity too high; must be between 0..3 inclusive")
)

func (v Verbosity) String() string {
	switch v {
	case NoVerbosity:
		return "none"
	case LowVerbosity:
		return "low"
	case MediumVerbosity:
		return "medium"
	case HighVerbosity:
		return "high"
	}
	return "invalid"
}

// ParseVerbosity range-checks a raw verbosity, e.g. from -verbosity=2.
func ParseVerbosity(verbosity int) (v Verbosity, err error) {
	v = Verbosity(verbosity)
	switch {
	case v < NoVerbosity:
		err = ErrVerbosityTooLow
	case v > HighVerbosity:
		err = ErrVerbosityTooHigh
	}
	if err != nil {
		err = dt.NewErr(
			ErrInvalidVerbosity,
			err,
			"verbosity", verbosity,
		)
		v = -1
	}
	return v, err
}
