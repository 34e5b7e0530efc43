package dto

import "time"

// OrderItemRequest carries the checkout-time product snapshot. The snapshot
// is stored verbatim so later catalog edits do not rewrite order history.
type OrderItemRequest struct {
	Product  ProductResponse `json:"product" binding:"required"`
	Quantity int64           `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is the JSON body for POST /api/orders. The owning user
// and the initial status are set by the server, never by the client. Total is
// in cents and is stored as supplied.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Total int64              `json:"total" binding:"gte=0"`

	Name          string `json:"name" binding:"required,max=200"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=40"`
	Address       string `json:"address" binding:"required,max=500"`
	City          string `json:"city" binding:"required,max=120"`
	State         string `json:"state" binding:"required,max=120"`
	PinCode       string `json:"pinCode" binding:"required,max=20"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash upi card netbanking"`
	Notes         string `json:"notes" binding:"max=2000"`
}

// UpdateOrderStatusRequest is the JSON body for PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}

type OrderItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int64           `json:"quantity"`
}

type OrderResponse struct {
	ID     int64               `json:"id"`
	UserID int64               `json:"userId"`
	Items  []OrderItemResponse `json:"items"`
	Total  int64               `json:"total"`
	Status string              `json:"status"`

	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PinCode       string `json:"pinCode"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}
