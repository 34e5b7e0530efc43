package store

import (
	"context"
	"errors"

	dom "printshop/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalid is returned when a record is missing a required field.
var ErrInvalid = errors.New("invalid record")

// ProductPatch is a partial product update. Nil fields are left unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *int64
	Image       *string
	Category    *string
}

// Store is the authoritative storage for users, products and orders.
// There is one in-memory implementation; the interface leaves room for a
// persistent backend without touching callers.
type Store interface {
	GetUser(ctx context.Context, id int64) (dom.User, error)
	GetUserByUsername(ctx context.Context, username string) (dom.User, error)
	CreateUser(ctx context.Context, u dom.User) (dom.User, error)

	GetProducts(ctx context.Context) ([]dom.Product, error)
	GetProduct(ctx context.Context, id int64) (dom.Product, error)
	CreateProduct(ctx context.Context, p dom.Product) (dom.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (dom.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	GetOrders(ctx context.Context) ([]dom.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]dom.Order, error)
	CreateOrder(ctx context.Context, o dom.Order) (dom.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (dom.Order, error)
}
