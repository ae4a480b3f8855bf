package history

import (
	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/ports"
)

// NewStore returns the history backend named by backend.
func NewStore(backend, path string, logger ports.Logger) ports.HistoryRepository {
	if backend == domain.HistoryBackendSQLite {
		return NewSQLiteStore(path, logger)
	}
	return NewFileStore(path, logger)
}
