package service

import (
	"context"
	"errors"

	"printshop/internal/cache"
	dom "printshop/internal/domain"
	"printshop/internal/store"

	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

// CatalogService handles product management and browsing.
type CatalogService struct {
	store store.Store
	cache *cache.CatalogCache
	sf    singleflight.Group
}

// NewCatalogService creates a CatalogService. If c is nil, caching is disabled.
func NewCatalogService(st store.Store, c *cache.CatalogCache) *CatalogService {
	return &CatalogService{store: st, cache: c}
}

// List returns all products in insertion order, through the cache when one
// is configured.
func (s *CatalogService) List(ctx context.Context) ([]dom.Product, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("products", func() (interface{}, error) {
			if list, err := s.cache.GetProducts(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.store.GetProducts(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetProducts(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Product), nil
	}
	return s.store.GetProducts(ctx)
}

// GetByID returns a single product.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (dom.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dom.Product{}, ErrNotFound
		}
		return dom.Product{}, err
	}
	return p, nil
}

// Create adds a product to the catalog.
func (s *CatalogService) Create(ctx context.Context, p dom.Product) (dom.Product, error) {
	created, err := s.store.CreateProduct(ctx, p)
	if err != nil {
		return dom.Product{}, err
	}
	s.invalidateCache(ctx)
	return created, nil
}

// Update applies a partial update to a product.
func (s *CatalogService) Update(ctx context.Context, id int64, patch store.ProductPatch) (dom.Product, error) {
	p, err := s.store.UpdateProduct(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dom.Product{}, ErrNotFound
		}
		return dom.Product{}, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

// Delete removes a product. Deleting an absent product is a no-op.
// Orders that reference the product keep their snapshots.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
