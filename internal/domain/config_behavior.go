package domain

import "strings"

// ResolveEndpoint picks the chat-completion URL.
// Priority: endpoint, then host joined with DefaultChatPath, then DefaultEndpoint.
func (c Config) ResolveEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Host != "" {
		return strings.TrimRight(c.Host, "/") + DefaultChatPath
	}
	return DefaultEndpoint
}

// GetModel returns the configured model name, falling back to DefaultModel.
func (c Config) GetModel() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// GetHistoryBackend returns the configured history backend.
// Unknown values fall back to the JSON file store.
func (c Config) GetHistoryBackend() string {
	switch strings.ToLower(strings.TrimSpace(c.HistoryBackend)) {
	case HistoryBackendSQLite:
		return HistoryBackendSQLite
	default:
		return HistoryBackendJSON
	}
}

// IsEmpty reports whether no key was configured.
func (c Config) IsEmpty() bool {
	return c == Config{}
}
