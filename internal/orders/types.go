package orders

import "time"

// Order statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCanceled  = "canceled"
)

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// LineItem is a single (product, quantity) pair within an order.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order is the record held in the order store. Total is computed from
// catalog prices at creation time and never recomputed.
type Order struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Items      []LineItem `json:"items"`
	Total      float64    `json:"total"`
	Status     string     `json:"status"` // pending | confirmed | shipped | delivered | canceled
	CreatedAt  time.Time  `json:"created_at"`
}
