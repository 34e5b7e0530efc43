package store_test

import (
	"context"
	"sync"
	"testing"

	"printshop/internal/auth"
	dom "printshop/internal/domain"
	"printshop/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed hash does not need to verify anything in most tests.
const dummyHash = "deadbeef.cafe"

func newStore(t *testing.T) *store.MemStore {
	t.Helper()
	s, err := store.NewMemStore(dummyHash)
	require.NoError(t, err)
	return s
}

func TestSeededAdmin(t *testing.T) {
	hash, err := auth.HashPassword("admin")
	require.NoError(t, err)
	s, err := store.NewMemStore(hash)
	require.NoError(t, err)

	u, err := s.GetUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.True(t, u.IsAdmin)
	// Ready for login as soon as construction returns.
	assert.True(t, auth.VerifyPassword("admin", u.Password))
}

func TestSeededSampleProduct(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	list, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "Business Cards", list[0].Name)
	assert.Equal(t, int64(4999), list[0].Price)
	assert.Equal(t, "cards", list[0].Category)
}

func TestCreateUserEmptyUsername(t *testing.T) {
	s := newStore(t)
	_, err := s.CreateUser(context.Background(), dom.User{Password: "x.y"})
	assert.ErrorIs(t, err, store.ErrInvalid)
}

func TestGetUserByUsernameCaseSensitive(t *testing.T) {
	s := newStore(t)
	_, err := s.GetUserByUsername(context.Background(), "Admin")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductLifecycle(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, dom.Product{Name: "Flyers", Price: 1999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID, "sample product is id=1")

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	_, err = s.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductIDsNeverReused(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a, err := s.CreateProduct(ctx, dom.Product{Name: "Posters"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(ctx, a.ID))

	b, err := s.CreateProduct(ctx, dom.Product{Name: "Stickers"})
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID, "deleted ids are not reallocated")
}

func TestUpdateProductPartialMerge(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, dom.Product{
		Name:        "Flyers",
		Description: "A5 flyers",
		Price:       1999,
		Image:       "https://example.com/flyers.jpg",
		Category:    "flyers",
	})
	require.NoError(t, err)

	price := int64(2499)
	updated, err := s.UpdateProduct(ctx, p.ID, store.ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, int64(2499), updated.Price)
	assert.Equal(t, "Flyers", updated.Name)
	assert.Equal(t, "A5 flyers", updated.Description)
	assert.Equal(t, "https://example.com/flyers.jpg", updated.Image)
	assert.Equal(t, "flyers", updated.Category)
}

func TestUpdateProductNotFound(t *testing.T) {
	s := newStore(t)
	name := "Ghost"
	_, err := s.UpdateProduct(context.Background(), 999, store.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteProductIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	before, err := s.GetProducts(ctx)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, 999))

	after, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "delete of absent id must not change the collection")
}

func TestGetProductsInsertionOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"Flyers", "Posters", "Banners"} {
		_, err := s.CreateProduct(ctx, dom.Product{Name: name})
		require.NoError(t, err)
	}

	list, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	names := []string{list[0].Name, list[1].Name, list[2].Name, list[3].Name}
	assert.Equal(t, []string{"Business Cards", "Flyers", "Posters", "Banners"}, names)
}

func TestGetUserOrdersFiltersByOwner(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i, userID := range []int64{2, 3, 2, 2, 3} {
		_, err := s.CreateOrder(ctx, dom.Order{UserID: userID, Total: int64(100 * (i + 1))})
		require.NoError(t, err)
	}

	orders, err := s.GetUserOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	ids := []int64{orders[0].ID, orders[1].ID, orders[2].ID}
	assert.Equal(t, []int64{1, 3, 4}, ids, "creation order, owner filter")

	all, err := s.GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestCreateOrderStoresSnapshotVerbatim(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	snapshot := dom.Product{ID: 1, Name: "Business Cards", Price: 4999}
	o, err := s.CreateOrder(ctx, dom.Order{
		UserID: 2,
		Items:  []dom.OrderItem{{Product: snapshot, Quantity: 3}},
		Total:  123, // not recomputed from items
	})
	require.NoError(t, err)
	assert.Equal(t, int64(123), o.Total)
	assert.False(t, o.CreatedAt.IsZero())

	// Edit and delete the live product; the order keeps its snapshot.
	price := int64(9999)
	_, err = s.UpdateProduct(ctx, 1, store.ProductPatch{Price: &price})
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(ctx, 1))

	orders, err := s.GetUserOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, int64(4999), orders[0].Items[0].Product.Price)
}

func TestOrderItemsAreCopied(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	items := []dom.OrderItem{{Product: dom.Product{ID: 1, Name: "Business Cards"}, Quantity: 1}}
	o, err := s.CreateOrder(ctx, dom.Order{UserID: 2, Items: items})
	require.NoError(t, err)

	// Mutating either the input or the returned slice must not leak into
	// the stored record.
	items[0].Quantity = 99
	o.Items[0].Product.Name = "tampered"

	orders, err := s.GetUserOrders(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), orders[0].Items[0].Quantity)
	assert.Equal(t, "Business Cards", orders[0].Items[0].Product.Name)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, dom.Order{UserID: 2, Status: dom.OrderStatusPending})
	require.NoError(t, err)

	updated, err := s.UpdateOrderStatus(ctx, o.ID, dom.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, dom.OrderStatusCompleted, updated.Status)
	assert.Equal(t, o.UserID, updated.UserID)
	assert.Equal(t, o.CreatedAt, updated.CreatedAt)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	s := newStore(t)
	_, err := s.UpdateOrderStatus(context.Background(), 999, dom.OrderStatusCompleted)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConcurrentCreatesAllocateUniqueIDs(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.CreateProduct(ctx, dom.Product{Name: "Leaflets"})
			assert.NoError(t, err)
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
