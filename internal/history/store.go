package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry represents one recorded computation
type Entry struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Method        string    `json:"method"`
	Precision     int       `json:"precision"`
	ElapsedMS     int64     `json:"elapsed_ms"`
	Digits        string    `json:"digits"`
	MismatchIndex int       `json:"mismatch_index"` // -1 when all digits are correct
}

// Filter defines criteria for querying past computations
type Filter struct {
	Method    string
	Precision int
	Since     time.Time
	Limit     int
	Offset    int
}

// Store defines the interface for computation history persistence
type Store interface {
	Record(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	Query(ctx context.Context, filter Filter) ([]*Entry, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteStore creates a new SQLite-based history store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS computations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		method TEXT NOT NULL,
		precision INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		digits TEXT NOT NULL,
		mismatch_index INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_computations_created_at ON computations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_computations_method ON computations(method);
	CREATE INDEX IF NOT EXISTS idx_computations_method_precision ON computations(method, precision);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a new computation entry
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Method == "" {
		return fmt.Errorf("entry has no method")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO computations (id, created_at, method, precision, elapsed_ms, digits, mismatch_index)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.CreatedAt, entry.Method, entry.Precision, entry.ElapsedMS, entry.Digits, entry.MismatchIndex)

	if err != nil {
		return fmt.Errorf("failed to insert computation: %w", err)
	}

	return nil
}

// Recent returns the most recent computations, newest first
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	return s.Query(ctx, Filter{Limit: limit})
}

// Query retrieves computations based on filter criteria
func (s *SQLiteStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, created_at, method, precision, elapsed_ms, digits, mismatch_index FROM computations WHERE 1=1`
	var args []interface{}

	if filter.Method != "" {
		query += " AND method = ?"
		args = append(args, filter.Method)
	}
	if filter.Precision > 0 {
		query += " AND precision = ?"
		args = append(args, filter.Precision)
	}
	if !filter.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.Since)
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query computations: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.Method, &entry.Precision,
			&entry.ElapsedMS, &entry.Digits, &entry.MismatchIndex); err != nil {
			return nil, fmt.Errorf("failed to scan computation: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Prune removes entries older than the specified duration
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM computations WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune computations: %w", err)
	}

	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory implementation for testing
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryStore creates a new in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make([]*Entry, 0),
	}
}

// Record stores a new computation entry
func (s *MemoryStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Method == "" {
		return fmt.Errorf("entry has no method")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.entries = append(s.entries, entry)
	return nil
}

// Recent returns the most recent computations, newest first
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	return s.Query(ctx, Filter{Limit: limit})
}

// Query retrieves computations based on filter criteria
func (s *MemoryStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Entry
	for i := len(s.entries) - 1; i >= 0; i-- {
		entry := s.entries[i]
		if filter.Method != "" && entry.Method != filter.Method {
			continue
		}
		if filter.Precision > 0 && entry.Precision != filter.Precision {
			continue
		}
		if !filter.Since.IsZero() && entry.CreatedAt.Before(filter.Since) {
			continue
		}
		results = append(results, entry)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Prune removes old entries
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64

	kept := make([]*Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.CreatedAt.After(cutoff) {
			kept = append(kept, entry)
		} else {
			deleted++
		}
	}
	s.entries = kept

	return deleted, nil
}

// Close is a no-op for memory store
func (s *MemoryStore) Close() error {
	return nil
}
