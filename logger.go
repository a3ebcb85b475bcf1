package cliargs

import (
	"log/slog"
)

var logger = slog.Default()

// SetLogger replaces the package logger. A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}

func init() {
	RegisterInitializerFunc(func(args InitializerArgs) error {
		if args.Logger != nil {
			SetLogger(args.Logger)
		}
		return nil
	})
}
