package validation

// CreateProductRequest is the payload for POST /products and PUT /products/:id.
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`     // must be non-empty
	Price    float64 `json:"price" validate:"gte=0"`       // price per unit, zero allowed
	Category string  `json:"category" validate:"required"` // free-form category label
}

// OrderItem represents a single order line item.
type OrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"` // must be >= 1
}

// CreateOrderRequest is the payload for POST /orders. The total is computed
// server-side from catalog prices; clients never send an amount.
type CreateOrderRequest struct {
	CustomerID string      `json:"customer_id" validate:"required"`
	Items      []OrderItem `json:"items" validate:"required,min=1,dive"` // at least one item
}
