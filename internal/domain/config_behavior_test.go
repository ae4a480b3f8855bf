package domain_test

import (
	"testing"

	"github.com/doeshing/hey-go/internal/domain"
)

// TestConfig_ResolveEndpoint tests endpoint priority resolution
func TestConfig_ResolveEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		config domain.Config
		want   string
	}{
		{
			name:   "empty config uses built-in default",
			config: domain.Config{},
			want:   "http://localhost:8080/v1/chat/completions",
		},
		{
			name:   "model only still uses built-in default",
			config: domain.Config{Model: "qwen"},
			want:   "http://localhost:8080/v1/chat/completions",
		},
		{
			name:   "host gets default path appended",
			config: domain.Config{Host: "http://x:9"},
			want:   "http://x:9/v1/chat/completions",
		},
		{
			name:   "host trailing slash stripped",
			config: domain.Config{Host: "http://x:9/"},
			want:   "http://x:9/v1/chat/completions",
		},
		{
			name:   "host multiple trailing slashes stripped",
			config: domain.Config{Host: "http://x:9///"},
			want:   "http://x:9/v1/chat/completions",
		},
		{
			name:   "endpoint used as-is",
			config: domain.Config{Endpoint: "http://y:1/custom"},
			want:   "http://y:1/custom",
		},
		{
			name:   "endpoint wins over host",
			config: domain.Config{Endpoint: "http://y:1/custom", Host: "http://x:9"},
			want:   "http://y:1/custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.ResolveEndpoint(); got != tt.want {
				t.Errorf("ResolveEndpoint() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestConfig_GetModel tests the model fallback
func TestConfig_GetModel(t *testing.T) {
	if got := (domain.Config{}).GetModel(); got != "local" {
		t.Errorf("expected default model local, got %s", got)
	}
	if got := (domain.Config{Model: "llama3"}).GetModel(); got != "llama3" {
		t.Errorf("expected configured model llama3, got %s", got)
	}
}

// TestConfig_GetHistoryBackend tests backend normalisation
func TestConfig_GetHistoryBackend(t *testing.T) {
	tests := map[string]string{
		"":         domain.HistoryBackendJSON,
		"json":     domain.HistoryBackendJSON,
		"SQLite":   domain.HistoryBackendSQLite,
		" sqlite ": domain.HistoryBackendSQLite,
		"postgres": domain.HistoryBackendJSON,
	}
	for value, want := range tests {
		cfg := domain.Config{HistoryBackend: value}
		if got := cfg.GetHistoryBackend(); got != want {
			t.Errorf("GetHistoryBackend(%q) = %s, want %s", value, got, want)
		}
	}
}
