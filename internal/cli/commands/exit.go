package commands

// Exit codes.
const (
	ExitOK       = 0
	ExitFailures = 1
	ExitError    = 2
	// ExitAbort matches the status a shell reports for a process killed by SIGABRT.
	ExitAbort = 134
)

// ExitCode is set by commands to indicate the result
var ExitCode = ExitOK
