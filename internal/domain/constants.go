package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for config and history files (rw-r--r--)
	FilePermissions = 0o644
)

// Endpoint defaults
const (
	// DefaultChatPath is appended to a configured host.
	DefaultChatPath = "/v1/chat/completions"
	// DefaultEndpoint is used when neither endpoint nor host is configured.
	DefaultEndpoint = "http://localhost:8080" + DefaultChatPath
	// DefaultModel is the model name sent when none is configured.
	DefaultModel = "local"
)

// Model request parameters
const (
	// QueryTemperature is the sampling temperature for command generation.
	QueryTemperature = 0.1
	// QueryMaxTokens caps the reply length.
	QueryMaxTokens = 512
	// PingMaxTokens is the reply budget of the connectivity probe.
	PingMaxTokens = 1
	// ErrorBodyLimit is how many characters of an error body are surfaced.
	ErrorBodyLimit = 120
)

// Timeout constants
const (
	// QueryTimeout bounds a single command-generation request.
	QueryTimeout = 30 * time.Second
	// PingTimeout bounds the connectivity probe.
	PingTimeout = 10 * time.Second
)

// History constants
const (
	// MaxHistoryEntries is how many entries the history store retains.
	MaxHistoryEntries = 500
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Exit codes
const (
	// ExitCommandNotFound is the shell convention for an unknown command.
	ExitCommandNotFound = 127
)

// Time formats
const (
	// TimestampFormat renders UTC times as ISO-8601 with microseconds and a numeric offset.
	TimestampFormat = "2006-01-02T15:04:05.000000-07:00"
)
