package store

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "printshop/internal/domain"
)

// Seed data created by NewMemStore. The admin account comes first so the
// store is usable for login as soon as construction returns.
const (
	seedAdminUsername = "admin"

	seedProductName        = "Business Cards"
	seedProductDescription = "High-quality business cards, 300gsm"
	seedProductPrice       = 4999
	seedProductImage       = "https://images.unsplash.com/photo-1503694978374-8a2fa686963a"
	seedProductCategory    = "cards"
)

// MemStore implements Store with process-lifetime maps. It is safe for
// concurrent use; each collection has its own id counter starting at 1,
// and ids are never reused after deletion.
type MemStore struct {
	mu sync.RWMutex

	users    map[int64]dom.User
	products map[int64]dom.Product
	orders   map[int64]dom.Order

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
}

// NewMemStore creates a store seeded with the admin account and a sample
// product. adminPasswordHash must already be in the stored credential form.
func NewMemStore(adminPasswordHash string) (*MemStore, error) {
	s := &MemStore{
		users:         make(map[int64]dom.User),
		products:      make(map[int64]dom.Product),
		orders:        make(map[int64]dom.Order),
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
	}

	ctx := context.Background()
	if _, err := s.CreateUser(ctx, dom.User{
		Username: seedAdminUsername,
		Password: adminPasswordHash,
		IsAdmin:  true,
	}); err != nil {
		return nil, err
	}
	if _, err := s.CreateProduct(ctx, dom.Product{
		Name:        seedProductName,
		Description: seedProductDescription,
		Price:       seedProductPrice,
		Image:       seedProductImage,
		Category:    seedProductCategory,
	}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MemStore) GetUser(_ context.Context, id int64) (dom.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return dom.User{}, ErrNotFound
	}
	return u, nil
}

// GetUserByUsername is a linear scan; fine at this scale.
func (s *MemStore) GetUserByUsername(_ context.Context, username string) (dom.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, ErrNotFound
}

// CreateUser allocates an id and stores the user. Usernames are not required
// to be unique here; the service layer rejects duplicates on register.
func (s *MemStore) CreateUser(_ context.Context, u dom.User) (dom.User, error) {
	if u.Username == "" {
		return dom.User{}, ErrInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

// GetProducts returns all products in insertion order.
func (s *MemStore) GetProducts(_ context.Context) ([]dom.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]dom.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	// Ids are allocated in insertion order, so sorting restores it.
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *MemStore) GetProduct(_ context.Context, id int64) (dom.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return dom.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) CreateProduct(_ context.Context, p dom.Product) (dom.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products[p.ID] = p
	return p, nil
}

// UpdateProduct merges the set fields of patch over the existing record.
func (s *MemStore) UpdateProduct(_ context.Context, id int64, patch ProductPatch) (dom.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return dom.Product{}, ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	s.products[id] = p
	return p, nil
}

// DeleteProduct is idempotent: deleting an absent id is a no-op, not an error.
// The freed id is never reallocated.
func (s *MemStore) DeleteProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	return nil
}

// GetOrders returns all orders, any owner, in insertion order.
func (s *MemStore) GetOrders(_ context.Context) ([]dom.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]dom.Order, 0, len(s.orders))
	for _, o := range s.orders {
		list = append(list, copyOrder(o))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetUserOrders returns the orders owned by userID in insertion order.
func (s *MemStore) GetUserOrders(_ context.Context, userID int64) ([]dom.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []dom.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			list = append(list, copyOrder(o))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// CreateOrder stores the caller-supplied item snapshot and total verbatim
// and stamps the creation time.
func (s *MemStore) CreateOrder(_ context.Context, o dom.Order) (dom.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextOrderID
	s.nextOrderID++
	o.Items = copyItems(o.Items)
	o.CreatedAt = time.Now().UTC()
	s.orders[o.ID] = o
	return copyOrder(o), nil
}

// UpdateOrderStatus replaces only the status field. The status string is not
// validated against the known set here.
func (s *MemStore) UpdateOrderStatus(_ context.Context, id int64, status string) (dom.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return dom.Order{}, ErrNotFound
	}
	o.Status = status
	s.orders[id] = o
	return copyOrder(o), nil
}

// copyOrder clones the item slice so callers never share memory with the
// stored record.
func copyOrder(o dom.Order) dom.Order {
	o.Items = copyItems(o.Items)
	return o
}

func copyItems(items []dom.OrderItem) []dom.OrderItem {
	if items == nil {
		return nil
	}
	return append([]dom.OrderItem(nil), items...)
}
