package cliargs

import (
	"errors"
)

var (
	ErrCommandLineSplitFailed  = errors.New("command line split failed")
	ErrFlagBindingFailed       = errors.New("flag binding failed")
	ErrFlagTypeNotDiscoverable = errors.New("flag type is not discoverable")
	ErrOptionsParsingFailed    = errors.New("options parsing failed")
	ErrInvalidTimeout          = errors.New("invalid timeout")
)
