// Package cache persists provider responses in an embedded SQLite
// key/value store addressed by request fingerprint.
package cache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/pkg/filesystem"
	"github.com/knock-sh/knock/internal/ports"
)

// SQLiteStore maps request fingerprints to response text. Entries never
// expire and are never invalidated; the last writer wins. Any storage
// failure degrades to cache-miss behavior instead of failing the request.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore opens (or creates) the database at path. An unopenable
// store is not an error: the returned store reports every key as a miss
// and drops every write.
func NewSQLiteStore(path string) *SQLiteStore {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &SQLiteStore{path: path}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

// DefaultPath returns ~/.knock/cache.db.
func DefaultPath() string {
	return filepath.Join(filesystem.UserHomeDir(), ".knock", "cache.db")
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		response TEXT NOT NULL
	);`)
	return err
}

// Get looks up a fingerprint by exact match. A miss, an unopened store,
// or a scan failure all return ("", false); the caller cannot tell them
// apart and does not need to.
func (s *SQLiteStore) Get(key string) (string, bool) {
	if s.db == nil || key == "" {
		return "", false
	}
	var response string
	if err := s.db.QueryRow(`SELECT response FROM responses WHERE key = ?`, key).Scan(&response); err != nil {
		return "", false
	}
	return response, true
}

// Put upserts a response, best effort. No lock is held between a Get and
// the corresponding Put, so concurrent invocations sharing the store may
// race on write; each per-key write is atomic.
func (s *SQLiteStore) Put(key, response string) {
	if s.db == nil || key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.db.Exec(`INSERT INTO responses (key, response) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET response = excluded.response`, key, response)
}

// Clear deletes every cached response.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`DELETE FROM responses`)
	return err
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.CacheStore = (*SQLiteStore)(nil)
