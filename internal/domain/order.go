package domain

import "time"

// Order statuses. The store does not restrict the status field to these;
// the transport layer validates incoming status changes against them.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a snapshot of a product at checkout time. Later edits or
// deletion of the product do not change it.
type OrderItem struct {
	Product  Product
	Quantity int64
}

// Order is a placed order. Total is in cents and is supplied by the caller,
// not recomputed from Items.
type Order struct {
	ID     int64
	UserID int64
	Items  []OrderItem
	Total  int64
	Status string

	// Contact and shipping details from the checkout form.
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	PinCode       string
	PaymentMethod string
	Notes         string

	CreatedAt time.Time
}
