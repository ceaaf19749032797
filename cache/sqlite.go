package cache

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore persists cache entries so a restart does not begin cold
type SQLiteStore struct {
	db *sql.DB
}

// Stats contains persisted cache statistics
type Stats struct {
	Entries     int
	Articles    int
	OldestEntry time.Time
	NewestEntry time.Time
}

// NewSQLiteStore initializes the cache database at the given path
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save replaces the stored entry for key
func (s *SQLiteStore) Save(key string, entry Entry) error {
	data, err := SerializeArticles(entry.Data)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO cache_entries
		(cache_key, articles, article_count, created_at)
		VALUES (?, ?, ?, ?)
	`, key, data, len(entry.Data), entry.Timestamp.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save cache entry %s: %w", key, err)
	}
	return nil
}

// Load returns every stored entry, oldest first. Rows that fail to decode
// are skipped.
func (s *SQLiteStore) Load() ([]Record, error) {
	rows, err := s.db.Query("SELECT cache_key, articles, created_at FROM cache_entries ORDER BY created_at, cache_key")
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entries: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			key       string
			data      []byte
			createdAt int64
		)
		if err := rows.Scan(&key, &data, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan cache entry: %w", err)
		}
		articles, err := DeserializeArticles(data)
		if err != nil {
			slog.Warn("cache read error", "key", key, "error", err)
			continue
		}
		records = append(records, Record{
			Key:   key,
			Entry: Entry{Data: articles, Timestamp: time.UnixMilli(createdAt)},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cache entries: %w", err)
	}
	return records, nil
}

// Clear removes all cache entries
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM cache_entries"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Stats returns cache statistics
func (s *SQLiteStore) Stats() (Stats, error) {
	var (
		stats    Stats
		articles sql.NullInt64
		oldest   sql.NullInt64
		newest   sql.NullInt64
	)

	err := s.db.QueryRow(`
		SELECT COUNT(*), SUM(article_count), MIN(created_at), MAX(created_at)
		FROM cache_entries
	`).Scan(&stats.Entries, &articles, &oldest, &newest)
	if err != nil {
		return stats, err
	}

	stats.Articles = int(articles.Int64)
	if oldest.Valid && oldest.Int64 > 0 {
		stats.OldestEntry = time.UnixMilli(oldest.Int64)
	}
	if newest.Valid && newest.Int64 > 0 {
		stats.NewestEntry = time.UnixMilli(newest.Int64)
	}
	return stats, nil
}

// Close closes the cache database
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
