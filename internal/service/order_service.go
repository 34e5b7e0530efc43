package service

import (
	"context"
	"errors"

	dom "printshop/internal/domain"
	"printshop/internal/store"
)

// OrderService handles order placement and management.
type OrderService struct {
	store store.Store
}

// NewOrderService returns a new OrderService.
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st}
}

// Place creates an order for userID with status pending. The item snapshot
// and total are stored as supplied.
func (s *OrderService) Place(ctx context.Context, userID int64, o dom.Order) (dom.Order, error) {
	o.UserID = userID
	o.Status = dom.OrderStatusPending
	return s.store.CreateOrder(ctx, o)
}

// ListAll returns every order, any owner.
func (s *OrderService) ListAll(ctx context.Context) ([]dom.Order, error) {
	return s.store.GetOrders(ctx)
}

// ListForUser returns the orders owned by userID in creation order.
func (s *OrderService) ListForUser(ctx context.Context, userID int64) ([]dom.Order, error) {
	return s.store.GetUserOrders(ctx, userID)
}

// UpdateStatus replaces the status of an order.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (dom.Order, error) {
	o, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dom.Order{}, ErrNotFound
		}
		return dom.Order{}, err
	}
	return o, nil
}
