package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/hey-go/internal/domain"
)

// Validate ensures config values are usable before they are persisted.
func Validate(cfg domain.Config) error {
	if err := validateURL("endpoint", cfg.Endpoint); err != nil {
		return err
	}
	if err := validateURL("host", cfg.Host); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(cfg.HistoryBackend)) {
	case "", domain.HistoryBackendJSON, domain.HistoryBackendSQLite:
	default:
		return fmt.Errorf("history_backend must be %s|%s, got %s",
			domain.HistoryBackendJSON, domain.HistoryBackendSQLite, cfg.HistoryBackend)
	}
	return nil
}

func validateURL(key, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s invalid: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %s", key, value)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host: %s", key, value)
	}
	return nil
}
