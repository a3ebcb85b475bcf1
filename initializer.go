package cliargs

import (
	"errors"
	"log/slog"
)

type InitializerArgs struct {
	Writer Writer
	Logger *slog.Logger
}

type InitializerFunc func(InitializerArgs) error

var initializerFuncs []InitializerFunc

func RegisterInitializerFunc(f InitializerFunc) {
	initializerFuncs = append(initializerFuncs, f)
}

// Initialize runs every registered initializer with args. All of them run
// even when one fails.
func Initialize(args InitializerArgs) error {
	var errs []error
	for _, f := range initializerFuncs {
		errs = append(errs, f(args))
	}
	return errors.Join(errs...)
}
