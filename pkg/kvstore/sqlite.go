package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coffeecorner/pkg/logger"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps the key-value data in a single local SQLite file. This is
// the default backend: the app's state is small and lives on the same host.
type SQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteStore opens (or creates) the database file at path and ensures the
// kv_entries table exists.
func NewSQLiteStore(path string, log *logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		log.Error("Failed to create kv_entries schema", "error", err)
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	log.Info("SQLite store opened", "path", path)
	return &SQLiteStore{db: db, logger: log.WithComponent("sqlite_store")}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read key", "key", key, "error", err)
		return "", fmt.Errorf("failed to read key %s: %v", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		s.logger.Error("Failed to write key", "key", key, "error", err)
		return fmt.Errorf("failed to write key %s: %v", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key)
	if err != nil {
		s.logger.Error("Failed to remove key", "key", key, "error", err)
		return fmt.Errorf("failed to remove key %s: %v", key, err)
	}
	return nil
}

func (s *SQLiteStore) MultiSet(ctx context.Context, pairs map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for key, value := range pairs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO kv_entries (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			s.logger.Error("Failed to write key in batch", "key", key, "error", err)
			return fmt.Errorf("failed to write key %s: %v", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch write: %v", err)
	}
	return nil
}

func (s *SQLiteStore) MultiRemove(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
			s.logger.Error("Failed to remove key in batch", "key", key, "error", err)
			return fmt.Errorf("failed to remove key %s: %v", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch remove: %v", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	s.logger.Info("Closing SQLite store")
	return s.db.Close()
}
