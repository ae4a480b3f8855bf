package domain

import "context"

// QueryRequest captures one CLI invocation after argument parsing.
type QueryRequest struct {
	Context  context.Context
	Prompt   string
	Explain  bool
	RunNow   bool
	NoRun    bool
	Copy     bool
	Endpoint string
	Model    string
	// Interactive is true when stdout is a terminal.
	Interactive bool
	// StdinPiped is true when stdin is not a terminal.
	StdinPiped bool
}

// QueryResponse reports what happened during an invocation.
type QueryResponse struct {
	Reply       string
	Command     string
	Environment Environment
	Copied      bool
	Execution   *ExecutionResult
	Install     *InstallAttempt
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Command  string
	Ran      bool
	ExitCode int
	Err      error
}

// InstallAttempt records the install-offer flow for a missing executable.
type InstallAttempt struct {
	Executable string
	Reply      string
	Command    string
	Execution  *ExecutionResult
}

// QueryService exposes the use-case boundary for handling a query.
type QueryService interface {
	Run(QueryRequest) (QueryResponse, error)
}
