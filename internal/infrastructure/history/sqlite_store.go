package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	limit    int
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore opens (or creates) a database next to jsonPath, replacing its
// extension with .db. When the database cannot be opened every call is served
// by the JSON file store at jsonPath instead.
func NewSQLiteStore(jsonPath string, logger ports.Logger) *SQLiteStore {
	fallback := NewFileStore(jsonPath, logger)
	path := strings.TrimSuffix(fallback.Path(), filepath.Ext(fallback.Path())) + ".db"
	store := &SQLiteStore{path: path, limit: domain.MaxHistoryEntries, fallback: fallback}

	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logFallback(logger, path, err)
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		logFallback(logger, path, err)
		_ = db.Close()
		store.db = nil
	}
	return store
}

func logFallback(logger ports.Logger, path string, err error) {
	if logger != nil {
		logger.Warn("sqlite history unavailable, using json file", map[string]interface{}{"path": path, "error": err.Error()})
	}
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		query TEXT,
		command TEXT,
		shell TEXT
	);`)
	return err
}

// Append inserts a new entry and evicts everything beyond the newest limit entries.
func (s *SQLiteStore) Append(entry domain.HistoryEntry) error {
	if s.db == nil {
		return s.fallback.Append(entry)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO entries (timestamp, query, command, shell) VALUES (?, ?, ?, ?)`,
		entry.Timestamp, entry.Query, entry.Command, entry.Shell); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM entries WHERE id NOT IN (SELECT id FROM entries ORDER BY id DESC LIMIT ?)`, s.limit); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Recent returns the last n entries in insertion order (all when n <= 0).
func (s *SQLiteStore) Recent(n int) ([]domain.HistoryEntry, error) {
	if s.db == nil {
		return s.fallback.Recent(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT timestamp, query, command, shell FROM entries ORDER BY id DESC`
	var args []interface{}
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.Timestamp, &e.Query, &e.Command, &e.Shell); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the sqlite database path, or the JSON path when running on the fallback.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
