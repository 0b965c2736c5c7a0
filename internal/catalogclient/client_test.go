package catalogclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetProduct_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","name":"Laptop","price":999.99,"category":"Electronics"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	p, err := c.GetProduct(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "1" || p.Price != 999.99 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetProduct(context.Background(), "999")

	var notFound *ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}
	if notFound.ProductID != "999" {
		t.Fatalf("error does not name the missing product: %v", notFound)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatal("a 404 must not be classified as unavailable")
	}
}

func TestGetProduct_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.GetProduct(context.Background(), "1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGetProduct_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond)
	_, err := c.GetProduct(context.Background(), "1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on timeout, got %v", err)
	}
}

func TestGetProduct_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetProduct(context.Background(), "1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on 500, got %v", err)
	}
}

func TestGetProduct_GarbledBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetProduct(context.Background(), "1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on undecodable body, got %v", err)
	}
}
