package service

import (
	"context"
	"testing"

	"coffeecorner/internal/repositories"
	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(store kvstore.Store) *SessionService {
	log := testLogger()
	svc := NewSessionService(
		repositories.NewUserRepository(store, log),
		repositories.NewSettingsRepository(store, log),
		log,
	)
	svc.Load(context.Background())
	return svc
}

func TestSessionLogin(t *testing.T) {
	ctx := context.Background()
	svc := newSessionService(kvstore.NewMemoryStore())

	assert.False(t, svc.IsLoggedIn())
	assert.False(t, svc.IsLoading())

	user, err := svc.Login(ctx, "Alice", "a@x.com")
	require.NoError(t, err)

	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsLoggedIn)
	assert.Equal(t, 0, user.OrdersCount)
	assert.Equal(t, 0, user.Points)
	assert.Contains(t, models.AvatarPool, user.Avatar)
	assert.True(t, svc.IsLoggedIn())
}

func TestSessionLoginAlwaysMintsNewID(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := newSessionService(store)

	first, err := svc.Login(ctx, "Alice", "a@x.com")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	// Logging in again with the same email does not resurrect the old id
	second, err := svc.Login(ctx, "Alice", "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, second.OrdersCount)
}

func TestSessionLogoutPreservesRecord(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := newSessionService(store)

	_, err := svc.Login(ctx, "Bob", "b@x.com")
	require.NoError(t, err)
	require.NoError(t, svc.IncrementOrders(ctx))

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, svc.IsLoggedIn())
	user := svc.User()
	require.NotNil(t, user, "logout keeps the user record")
	assert.Equal(t, 1, user.OrdersCount)
	assert.Equal(t, models.PointsPerOrder, user.Points)

	// A fresh load sees the logged-out record with history intact
	reloaded := newSessionService(store)
	assert.False(t, reloaded.IsLoggedIn())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, 1, reloaded.User().OrdersCount)
}

func TestSessionLogoutWithoutUserIsNoop(t *testing.T) {
	svc := newSessionService(kvstore.NewMemoryStore())
	assert.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, svc.User())
}

func TestSessionIncrementOrders(t *testing.T) {
	ctx := context.Background()
	svc := newSessionService(kvstore.NewMemoryStore())

	t.Run("fails when not logged in", func(t *testing.T) {
		assert.Error(t, svc.IncrementOrders(ctx))
	})

	t.Run("orders and points always move together", func(t *testing.T) {
		_, err := svc.Login(ctx, "Carol", "c@x.com")
		require.NoError(t, err)

		const n = 5
		for i := 0; i < n; i++ {
			require.NoError(t, svc.IncrementOrders(ctx))
		}

		user := svc.User()
		require.NotNil(t, user)
		assert.Equal(t, n, user.OrdersCount)
		assert.Equal(t, n*models.PointsPerOrder, user.Points)
	})
}

func TestSessionUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newSessionService(kvstore.NewMemoryStore())

	t.Run("no-op when logged out", func(t *testing.T) {
		name := "Nobody"
		assert.NoError(t, svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &name}))
		assert.Nil(t, svc.User())
	})

	t.Run("merges only the provided fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "Dora", "d@x.com")
		require.NoError(t, err)

		name := "Dora Updated"
		require.NoError(t, svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &name}))

		user := svc.User()
		require.NotNil(t, user)
		assert.Equal(t, "Dora Updated", user.Name)
		assert.Equal(t, "d@x.com", user.Email, "unset fields stay untouched")
	})

	t.Run("avatar update", func(t *testing.T) {
		require.NoError(t, svc.UpdateAvatar(ctx, "custom.png"))
		assert.Equal(t, "custom.png", svc.User().Avatar)
	})
}

func TestSessionOnboardingFlag(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := newSessionService(store)

	assert.False(t, svc.HasSeenOnboarding())

	require.NoError(t, svc.CompleteOnboarding(ctx))
	assert.True(t, svc.HasSeenOnboarding())

	// Persisted independently of the user record
	reloaded := newSessionService(store)
	assert.True(t, reloaded.HasSeenOnboarding())

	require.NoError(t, svc.ResetOnboarding(ctx))
	assert.False(t, svc.HasSeenOnboarding())
}

func TestSessionOptimisticLoginOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	svc := newSessionService(readOnlyStore{kvstore.NewMemoryStore()})

	user, err := svc.Login(ctx, "Eve", "e@x.com")
	assert.Error(t, err, "persistence failure surfaces to callers that await it")

	// The session is live in memory regardless
	require.NotNil(t, user)
	assert.True(t, svc.IsLoggedIn())
}
