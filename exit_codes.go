package cliargs

// Exit codes for programs built on cliargs, ordered by how early in
// startup the failure happened:
//   - 1: Failed parsing or binding command-line arguments
//   - 2: Failed loading configuration file(s)
//   - 3: Failed validating configuration content
//   - 4: Expected/handled error during execution
//   - 5: Unexpected/unhandled error during execution
//   - 6: Failed initializing the writer or logger
//
// cliargs itself loads no configuration; codes 2 and 3 are kept so hosts
// that do share one numbering.
//
// Exit codes 128 and above are reserved for signal-related exits.
// See: https://tldp.org/LDP/abs/html/exitcodes.html

//goland:noinspection GoUnusedConst
const (
	ExitSuccess             = 0
	ExitOptionsParseError   = 1
	ExitConfigLoadError     = 2
	ExitConfigParseError    = 3
	ExitKnownRuntimeError   = 4
	ExitUnknownRuntimeError = 5
	ExitLoggerSetupError    = 6
)
