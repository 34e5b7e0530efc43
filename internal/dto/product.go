package dto

// CreateProductRequest is the JSON body for POST /api/products.
// Price is in the smallest currency unit (cents).
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Price       int64  `json:"price" binding:"gte=0"`
	Image       string `json:"image" binding:"max=2000"`
	Category    string `json:"category" binding:"max=120"`
}

// UpdateProductRequest is a partial update: nil = leave unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Image       *string `json:"image" binding:"omitempty,max=2000"`
	Category    *string `json:"category" binding:"omitempty,max=120"`
}

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}
