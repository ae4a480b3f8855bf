package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/pkg/filesystem"
	"github.com/doeshing/hey-go/internal/ports"
)

// FileLoader loads configuration from ~/.config/hey/config.json (overridable via HEY_CONFIG).
// Files ending in .yaml or .yml are decoded as YAML.
type FileLoader struct {
	overridePath string
	logger       ports.Logger
}

// NewFileLoader builds a new loader. An empty path selects the default location.
func NewFileLoader(path string, logger ports.Logger) *FileLoader {
	return &FileLoader{overridePath: path, logger: logger}
}

// Load implements ports.ConfigProvider. A missing or malformed file yields an
// empty config and a nil error.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.debug("config unreadable, using defaults", map[string]interface{}{"path": path, "error": err.Error()})
		}
		return domain.Config{}, nil
	}

	cfg, err := decode(path, data)
	if err != nil {
		l.debug("config malformed, using defaults", map[string]interface{}{"path": path, "error": err.Error()})
		return domain.Config{}, nil
	}
	return cfg, nil
}

// Save writes cfg to the config path, creating parent directories.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	raw, err := encode(path, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.FilePermissions)
}

// Path returns the resolved config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	return filesystem.DefaultConfigPath()
}

func (l *FileLoader) debug(msg string, fields map[string]interface{}) {
	if l.logger != nil {
		l.logger.Debug(msg, fields)
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func decode(path string, data []byte) (domain.Config, error) {
	var cfg domain.Config
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, err
		}
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func encode(path string, cfg domain.Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(cfg)
	}
	return json.MarshalIndent(cfg, "", "  ")
}

var (
	_ ports.ConfigProvider = (*FileLoader)(nil)
	_ ports.ConfigSaver    = (*FileLoader)(nil)
)
