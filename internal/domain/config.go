package domain

// Config mirrors ~/.config/hey/config.json.
type Config struct {
	Endpoint       string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Host           string `json:"host,omitempty" yaml:"host,omitempty"`
	Model          string `json:"model,omitempty" yaml:"model,omitempty"`
	HistoryBackend string `json:"history_backend,omitempty" yaml:"history_backend,omitempty"`
}

// HistoryBackend names the persistence used for history entries.
const (
	HistoryBackendJSON   = "json"
	HistoryBackendSQLite = "sqlite"
)
