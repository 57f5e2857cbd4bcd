package models

// OrderItem is a single line item in an order.
// ProductID references a product loosely (title or store id); it is not
// resolved against the catalog on submission.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is an order submission. The declared subtotal is persisted verbatim;
// it is validated against the line items before any write but never recomputed
// into the stored document.
type Order struct {
	Items    []OrderItem `json:"items" bson:"items"`
	Subtotal float64     `json:"subtotal" bson:"subtotal"`
}

// StoredOrder is an order as read back from the store,
// carrying the store-assigned identifier
type StoredOrder struct {
	ID    string `json:"id" bson:"-"`
	Order `bson:",inline"`
}
