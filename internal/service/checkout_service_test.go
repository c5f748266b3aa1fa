package service

import (
	"context"
	"fmt"
	"testing"

	"coffeecorner/internal/repositories"
	"coffeecorner/models"
	"coffeecorner/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failKeyStore fails writes to a single key and passes everything else
// through, so one slice's persistence can be broken in isolation.
type failKeyStore struct {
	*kvstore.MemoryStore
	failKey string
}

func (s failKeyStore) Set(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return fmt.Errorf("write refused for %s", key)
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s failKeyStore) Remove(ctx context.Context, key string) error {
	if key == s.failKey {
		return fmt.Errorf("write refused for %s", key)
	}
	return s.MemoryStore.Remove(ctx, key)
}

func newCheckoutFixture(store kvstore.Store) (*CheckoutService, *CartService, *SessionService) {
	cart := newCartService(store)
	session := newSessionService(store)
	return NewCheckoutService(cart, session, testLogger()), cart, session
}

func TestCheckoutQuote(t *testing.T) {
	ctx := context.Background()

	addWithSubtotal := func(t *testing.T, cart *CartService, subtotal float64) {
		t.Helper()
		_, err := cart.AddItem(ctx, models.CartItem{
			ProductID: "1", Name: "Classic Espresso", Price: subtotal,
			Quantity: 1, Size: models.SizeSmall, Sugar: models.SugarNone,
		})
		require.NoError(t, err)
	}

	t.Run("free delivery above the threshold", func(t *testing.T) {
		checkout, cart, _ := newCheckoutFixture(kvstore.NewMemoryStore())
		addWithSubtotal(t, cart, 20.00)

		quote := checkout.Quote()
		assert.InDelta(t, 20.00, quote.Subtotal, 1e-9)
		assert.InDelta(t, 2.00, quote.Discount, 1e-9)
		assert.InDelta(t, 0.00, quote.DeliveryFee, 1e-9)
		assert.InDelta(t, 18.00, quote.Total, 1e-9)
	})

	t.Run("flat fee at or below the threshold", func(t *testing.T) {
		checkout, cart, _ := newCheckoutFixture(kvstore.NewMemoryStore())
		addWithSubtotal(t, cart, 10.00)

		quote := checkout.Quote()
		assert.InDelta(t, 1.00, quote.Discount, 1e-9)
		assert.InDelta(t, 1.00, quote.DeliveryFee, 1e-9)
		assert.InDelta(t, 10.00, quote.Total, 1e-9)
	})

	t.Run("threshold itself still pays the fee", func(t *testing.T) {
		checkout, cart, _ := newCheckoutFixture(kvstore.NewMemoryStore())
		addWithSubtotal(t, cart, 15.00)

		assert.InDelta(t, 1.00, checkout.Quote().DeliveryFee, 1e-9)
	})

	t.Run("discount is capped", func(t *testing.T) {
		checkout, cart, _ := newCheckoutFixture(kvstore.NewMemoryStore())
		addWithSubtotal(t, cart, 80.00)

		quote := checkout.Quote()
		assert.InDelta(t, 5.00, quote.Discount, 1e-9)
		assert.InDelta(t, 75.00, quote.Total, 1e-9)
	})
}

func TestCheckoutPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a logged-in user", func(t *testing.T) {
		checkout, cart, _ := newCheckoutFixture(kvstore.NewMemoryStore())
		_, err := cart.AddItem(ctx, latteItem(1))
		require.NoError(t, err)

		_, err = checkout.Checkout(ctx)
		assert.Error(t, err)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		checkout, _, session := newCheckoutFixture(kvstore.NewMemoryStore())
		_, err := session.Login(ctx, "Alice", "a@x.com")
		require.NoError(t, err)

		_, err = checkout.Checkout(ctx)
		assert.Error(t, err)
	})
}

func TestCheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	checkout, cart, session := newCheckoutFixture(kvstore.NewMemoryStore())

	_, err := session.Login(ctx, "Alice", "a@x.com")
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, latteItem(2))
	require.NoError(t, err)

	quote, err := checkout.Checkout(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, quote.Subtotal, 1e-9)

	assert.Empty(t, cart.Items())
	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, 1, user.OrdersCount)
	assert.Equal(t, models.PointsPerOrder, user.Points)
}

func TestCheckoutPartialEffectOnCartClearFailure(t *testing.T) {
	// The order credit is awarded first; a failure clearing the cart leaves
	// the credit in place and the cart populated.
	ctx := context.Background()
	store := failKeyStore{kvstore.NewMemoryStore(), repositories.KeyCart}

	cart := NewCartService(repositories.NewCartRepository(store, testLogger()), testLogger())
	cart.Load(ctx)
	session := newSessionService(store)
	checkout := NewCheckoutService(cart, session, testLogger())

	_, err := session.Login(ctx, "Bob", "b@x.com")
	require.NoError(t, err)
	_, err = cart.AddItem(ctx, latteItem(1))
	assert.Error(t, err, "cart writes are broken in this fixture")
	require.Equal(t, 1, cart.ItemCount(), "the in-memory commit stands")

	_, err = checkout.Checkout(ctx)
	assert.Error(t, err)

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, 1, user.OrdersCount, "credit was awarded before the failure")
	assert.Empty(t, cart.Items(), "the in-memory clear is already committed")
}
