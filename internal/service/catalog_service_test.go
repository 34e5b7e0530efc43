package service

import (
	"context"
	"testing"

	dom "printshop/internal/domain"
	"printshop/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	st, err := store.NewMemStore("deadbeef.cafe")
	require.NoError(t, err)
	return NewCatalogService(st, nil) // caching disabled
}

func TestCatalogListAndGet(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	p, err := svc.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Business Cards", p.Name)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogCreateUpdateDelete(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, dom.Product{Name: "Flyers", Price: 1999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)

	price := int64(2499)
	updated, err := svc.Update(ctx, p.ID, store.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(2499), updated.Price)
	assert.Equal(t, "Flyers", updated.Name)

	_, err = svc.Update(ctx, 999, store.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, svc.Delete(ctx, p.ID))
}
