// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The query orchestrator depends only on these
// interfaces, so tests drive it with scripted answers and fake endpoints instead
// of a real terminal, clipboard or model server.
package ports

import (
	"context"

	"github.com/doeshing/hey-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.config/hey/config.json.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ConfigSaver persists configuration back to storage.
type ConfigSaver interface {
	Save(domain.Config) error
	Path() string
}

// EnvironmentDetector describes the user's shell and OS flavour for prompt construction.
type EnvironmentDetector interface {
	DetectShell() string
	DetectPlatform() string
	Detect() domain.Environment
}

// ChatRequest contains everything needed to ask the model for a command.
type ChatRequest struct {
	Prompt   string
	Explain  bool
	Shell    string
	Platform string
	Endpoint string
	Model    string
}

// LLMClient talks to an OpenAI-compatible chat-completion endpoint.
type LLMClient interface {
	Query(ctx context.Context, req ChatRequest) (string, error)
	Ping(ctx context.Context, endpoint, model string) domain.PingResult
}

// HistoryRepository stores past queries and their commands.
type HistoryRepository interface {
	Append(entry domain.HistoryEntry) error
	Recent(n int) ([]domain.HistoryEntry, error)
	Path() string
}

// Clipboard provides best-effort clipboard integration for copying commands.
type Clipboard interface {
	Copy(text string) bool
}

// CommandExecutor runs shell commands through the user's shell.
type CommandExecutor interface {
	// Available reports whether the executable resolves on the search path.
	Available(name string) bool
	// FirstWord returns the executable a command line would invoke.
	FirstWord(command string) string
	// Run executes command with shell semantics and returns its exit code.
	Run(ctx context.Context, command, shell string) (int, error)
}

// LineReader reads one line of user input after showing a prompt.
// io.EOF or an interrupt are returned as errors and treated as a declined answer.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
