package catalog

import (
	"errors"
	"strconv"
	"sync"
)

// ErrProductNotFound is returned for lookups of unknown product ids.
var ErrProductNotFound = errors.New("product not found")

// Store holds the product catalog in process memory. State lives for the
// lifetime of the process; there is no persistence across restarts.
type Store struct {
	mu     sync.Mutex
	byID   map[string]Product
	order  []string // ids in insertion order
	nextID int64
}

// NewStore returns an empty catalog store.
func NewStore() *Store {
	return &Store{byID: map[string]Product{}}
}

// Create assigns the next id and stores the product.
func (s *Store) Create(name string, price float64, category string) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	p := Product{
		ID:       strconv.FormatInt(s.nextID, 10),
		Name:     name,
		Price:    price,
		Category: category,
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

// Get returns the product with the given id, or ErrProductNotFound.
func (s *Store) Get(id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns products in insertion order. A non-empty category narrows
// the result to matching products.
func (s *Store) List(category string) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Update replaces an existing product's fields, keeping its id.
func (s *Store) Update(id, name string, price float64, category string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	p.Name = name
	p.Price = price
	p.Category = category
	s.byID[id] = p
	return p, nil
}

// Delete removes a product. Its id is never reassigned.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Seed loads the demo catalog used for local runs.
func (s *Store) Seed() {
	s.Create("Laptop", 999.99, "Electronics")
	s.Create("Mouse", 29.99, "Electronics")
	s.Create("Keyboard", 79.99, "Electronics")
}
