// Package history persists prior translations as a timestamp-keyed,
// append-only log.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/pkg/filesystem"
	"github.com/knock-sh/knock/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.knock/history.db database.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.UserHomeDir(), ".knock", "history.db"))
}

// NewSQLiteStoreAt opens the database at path. An unopenable database
// degrades to a store that drops writes and returns no records; history
// is never worth failing a request over.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &SQLiteStore{}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{}
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		query TEXT,
		command TEXT
	);`)
	return err
}

// Add appends a record.
func (s *SQLiteStore) Add(record domain.HistoryRecord) error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO translations (timestamp, query, command) VALUES (?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Query,
		record.Command,
	)
	return err
}

// Recent returns the newest records, most recent first.
func (s *SQLiteStore) Recent(limit int) ([]domain.HistoryRecord, error) {
	return s.query("", limit)
}

// Search returns records whose query or command contains filter.
func (s *SQLiteStore) Search(filter string) ([]domain.HistoryRecord, error) {
	return s.query(filter, 0)
}

func (s *SQLiteStore) query(filter string, limit int) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, query, command FROM translations")
	var args []interface{}
	if filter != "" {
		builder.WriteString(" WHERE query LIKE ? OR command LIKE ?")
		args = append(args, "%"+filter+"%", "%"+filter+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts string
		if err := rows.Scan(&ts, &rec.Query, &rec.Command); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
