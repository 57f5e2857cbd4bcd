package models

// Product represents a catalog product as submitted by a client.
// Products are immutable once stored; there are no update or delete endpoints.
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
	Image       string  `json:"image" bson:"image"`
}

// Validate checks the product record at the API boundary
func (p Product) Validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Message: "price must be non-negative"}
	}
	return nil
}

// StoredProduct is a product as read back from the store,
// carrying the store-assigned identifier
type StoredProduct struct {
	ID      string `json:"id" bson:"-"`
	Product `bson:",inline"`
}
