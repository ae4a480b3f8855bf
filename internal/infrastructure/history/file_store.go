package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/pkg/filesystem"
	"github.com/doeshing/hey-go/internal/ports"
)

// FileStore keeps history as a pretty-printed JSON array.
// Concurrent processes are not coordinated; the last writer wins.
type FileStore struct {
	path   string
	limit  int
	logger ports.Logger
	mu     sync.Mutex
}

// NewFileStore creates a store at path (default ~/.local/share/hey/history.json).
func NewFileStore(path string, logger ports.Logger) *FileStore {
	if path == "" {
		path = filesystem.DefaultHistoryPath()
	}
	return &FileStore{
		path:   path,
		limit:  domain.MaxHistoryEntries,
		logger: logger,
	}
}

// Append implements ports.HistoryRepository.
func (f *FileStore) Append(entry domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := append(f.load(), entry)
	entries = domain.TrimHistory(entries, f.limit)
	return f.write(entries)
}

// Recent returns the last n entries (all when n <= 0).
func (f *FileStore) Recent(n int) ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.LastEntries(f.load(), n), nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// load treats a missing or corrupt file as an empty history.
func (f *FileStore) load() []domain.HistoryEntry {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) && f.logger != nil {
			f.logger.Debug("history unreadable", map[string]interface{}{"path": f.path, "error": err.Error()})
		}
		return nil
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		if f.logger != nil {
			f.logger.Debug("history corrupt, starting fresh", map[string]interface{}{"path": f.path, "error": err.Error()})
		}
		return nil
	}
	return entries
}

func (f *FileStore) write(entries []domain.HistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, domain.FilePermissions)
}

var _ ports.HistoryRepository = (*FileStore)(nil)
