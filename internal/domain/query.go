package domain

import "context"

// TranslateRequest captures user intent originating from the CLI.
type TranslateRequest struct {
	Context context.Context
	Input   string
	Mode    Mode
}

// TranslateResponse is the canonical response propagated back to the CLI.
type TranslateResponse struct {
	Text         string
	FromCache    bool
	ShellContext ShellContext
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran      bool
	ExitCode int
	Err      error
}
