package orders

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

var (
	// ErrOrderNotFound is returned for lookups of unknown order ids.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned when a status update names a value
	// outside the five order statuses.
	ErrInvalidStatus = errors.New("invalid order status")
)

// Store holds orders in process memory. No persistence, no deletion.
type Store struct {
	mu      sync.Mutex
	byID    map[string]Order
	order   []string // ids in insertion order
	nextID  int64
	nowFunc func() time.Time
}

// NewStore returns an empty order store.
func NewStore() *Store {
	return &Store{
		byID:    map[string]Order{},
		nowFunc: time.Now,
	}
}

// Create assigns the next id, stamps status pending and created_at, and
// persists the order. Callers validate items and compute the total first.
func (s *Store) Create(customerID string, items []LineItem, total float64) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	o := Order{
		ID:         strconv.FormatInt(s.nextID, 10),
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Status:     StatusPending,
		CreatedAt:  s.nowFunc().UTC(),
	}
	s.byID[o.ID] = o
	s.order = append(s.order, o.ID)
	return o
}

// Get returns the order with the given id, or ErrOrderNotFound.
func (s *Store) Get(id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns orders in insertion order. A non-empty customerID narrows
// the result to that customer's orders.
func (s *Store) List(customerID string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, 0, len(s.order))
	for _, id := range s.order {
		o := s.byID[id]
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		out = append(out, o)
	}
	return out
}

// UpdateStatus sets the order's status in place and returns the updated
// order. The stored record is untouched when the status value is invalid
// or the id is unknown.
func (s *Store) UpdateStatus(id, status string) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	o.Status = status
	s.byID[id] = o
	return o, nil
}
