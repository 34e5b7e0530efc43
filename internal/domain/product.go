package domain

// Product is a catalog item. Price is in the smallest currency unit (cents).
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	Image       string
	Category    string
}
