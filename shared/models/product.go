package models

// Product is a catalog entry.
type Product struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"inStock"`
}

// CreateProductRequest is the body of POST /api/product.
type CreateProductRequest struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"inStock"`
}

// UpdateProductRequest is the body of PUT /api/product/{id}.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name    *string  `json:"name,omitempty"`
	Price   *float64 `json:"price,omitempty"`
	InStock *bool    `json:"inStock,omitempty"`
}
