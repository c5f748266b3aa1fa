package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coffeecorner/pkg/database"
	"coffeecorner/pkg/logger"
)

// PostgresStore keeps the key-value data in a Postgres table, for deployments
// where the service shares a database server with other infrastructure.
type PostgresStore struct {
	db     *database.DB
	logger *logger.Logger
}

// NewPostgresStore ensures the kv_entries table exists on the given
// connection.
func NewPostgresStore(db *database.DB, log *logger.Logger) (*PostgresStore, error) {
	schema := `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
	`
	if _, err := db.Exec(schema); err != nil {
		log.Error("Failed to create kv_entries schema", "error", err)
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &PostgresStore{db: db, logger: log.WithComponent("postgres_store")}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read key", "key", key, "error", err)
		return "", fmt.Errorf("failed to read key %s: %v", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		s.logger.Error("Failed to write key", "key", key, "error", err)
		return fmt.Errorf("failed to write key %s: %v", key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	if err != nil {
		s.logger.Error("Failed to remove key", "key", key, "error", err)
		return fmt.Errorf("failed to remove key %s: %v", key, err)
	}
	return nil
}

func (s *PostgresStore) MultiSet(ctx context.Context, pairs map[string]string) error {
	return s.db.ExecuteInTransaction(func(tx *sql.Tx) error {
		for key, value := range pairs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO kv_entries (key, value) VALUES ($1, $2)
				 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
			if err != nil {
				s.logger.Error("Failed to write key in batch", "key", key, "error", err)
				return fmt.Errorf("failed to write key %s: %v", key, err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) MultiRemove(ctx context.Context, keys ...string) error {
	return s.db.ExecuteInTransaction(func(tx *sql.Tx) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
				s.logger.Error("Failed to remove key in batch", "key", key, "error", err)
				return fmt.Errorf("failed to remove key %s: %v", key, err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
