package catalog

import (
	"errors"
	"testing"
)

func TestStoreCreate_AssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	p1 := s.Create("Laptop", 999.99, "Electronics")
	p2 := s.Create("Mouse", 29.99, "Electronics")

	if p1.ID != "1" || p2.ID != "2" {
		t.Fatalf("expected ids 1 and 2, got %s and %s", p1.ID, p2.ID)
	}
	if p1.ID == p2.ID {
		t.Fatal("ids must be unique")
	}
}

func TestStoreGet_RoundTrip(t *testing.T) {
	s := NewStore()
	created := s.Create("Laptop", 999.99, "Electronics")

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}

	// repeated reads return identical content
	again, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != got {
		t.Fatalf("repeated get differs: %+v vs %+v", again, got)
	}
}

func TestStoreGet_NotFound(t *testing.T) {
	s := NewStore()
	if _, err := s.Get("999"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestStoreList_InsertionOrderAndCategoryFilter(t *testing.T) {
	s := NewStore()
	s.Create("Laptop", 999.99, "Electronics")
	s.Create("Desk", 149.50, "Furniture")
	s.Create("Mouse", 29.99, "Electronics")

	all := s.List("")
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
	if all[0].Name != "Laptop" || all[1].Name != "Desk" || all[2].Name != "Mouse" {
		t.Fatalf("products not in insertion order: %+v", all)
	}

	electronics := s.List("Electronics")
	if len(electronics) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(electronics))
	}
	for _, p := range electronics {
		if p.Category != "Electronics" {
			t.Fatalf("filter leaked product %+v", p)
		}
	}
}

func TestStoreUpdate_KeepsID(t *testing.T) {
	s := NewStore()
	created := s.Create("Laptop", 999.99, "Electronics")

	updated, err := s.Update(created.ID, "Gaming Laptop", 1299.99, "Electronics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed id: %s -> %s", created.ID, updated.ID)
	}
	if updated.Name != "Gaming Laptop" || updated.Price != 1299.99 {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestStoreDelete_IDNotReused(t *testing.T) {
	s := NewStore()
	p1 := s.Create("Laptop", 999.99, "Electronics")

	if err := s.Delete(p1.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(p1.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected deleted product to be gone, got %v", err)
	}
	if err := s.Delete(p1.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected double delete to fail, got %v", err)
	}

	p2 := s.Create("Mouse", 29.99, "Electronics")
	if p2.ID == p1.ID {
		t.Fatalf("id %s was reused after delete", p1.ID)
	}
}

func TestStoreSeed(t *testing.T) {
	s := NewStore()
	s.Seed()

	products := s.List("")
	if len(products) != 3 {
		t.Fatalf("expected 3 seeded products, got %d", len(products))
	}
	if products[0].Name != "Laptop" || products[0].ID != "1" {
		t.Fatalf("unexpected first seeded product: %+v", products[0])
	}
}
