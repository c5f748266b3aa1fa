package service

import (
	"context"
	"fmt"

	"coffeecorner/internal/repositories"
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

// readOnlyStore reads normally but fails every write, for verifying that
// in-memory state survives persistence failures.
type readOnlyStore struct {
	*kvstore.MemoryStore
}

func (readOnlyStore) Set(context.Context, string, string) error {
	return fmt.Errorf("write refused")
}

func (readOnlyStore) Remove(context.Context, string) error {
	return fmt.Errorf("write refused")
}

func (readOnlyStore) MultiSet(context.Context, map[string]string) error {
	return fmt.Errorf("write refused")
}

func (readOnlyStore) MultiRemove(context.Context, ...string) error {
	return fmt.Errorf("write refused")
}

func newSeededCatalog(ctx context.Context) *CatalogService {
	store := kvstore.NewMemoryStore()
	log := testLogger()

	appRepo := repositories.NewAppRepository(store, log)
	if err := appRepo.Initialize(ctx); err != nil {
		panic(err)
	}

	catalog := NewCatalogService(repositories.NewCatalogRepository(store, log), log)
	catalog.Load(ctx)
	return catalog
}
