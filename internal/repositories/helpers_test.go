package repositories

import (
	"context"
	"fmt"

	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

// brokenStore fails every operation, for exercising read-failure degradation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) {
	return "", fmt.Errorf("store unavailable")
}

func (brokenStore) Set(context.Context, string, string) error {
	return fmt.Errorf("store unavailable")
}

func (brokenStore) Remove(context.Context, string) error {
	return fmt.Errorf("store unavailable")
}

func (brokenStore) MultiSet(context.Context, map[string]string) error {
	return fmt.Errorf("store unavailable")
}

func (brokenStore) MultiRemove(context.Context, ...string) error {
	return fmt.Errorf("store unavailable")
}

func (brokenStore) Close() error { return nil }

var _ kvstore.Store = brokenStore{}
