package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable marks failures to reach the product service at all:
// connection refused, timed-out call, or a response we cannot use.
var ErrUnavailable = errors.New("product service unavailable")

// ProductNotFoundError reports a lookup for an id the catalog does not have.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// Product mirrors the catalog service response body.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Client looks up products over HTTP. The order service treats the catalog
// as an unreliable remote dependency, so every call carries a bounded
// timeout and no retries.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
}

// New returns a Client bound to the catalog base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// GetProduct fetches one product by id.
// A remote 404 maps to *ProductNotFoundError; transport failures, timeouts
// and unexpected statuses wrap ErrUnavailable.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/products/%s", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var p Product
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: decode product %s: %v", ErrUnavailable, productID, err)
		}
		return &p, nil
	case http.StatusNotFound:
		return nil, &ProductNotFoundError{ProductID: productID}
	default:
		return nil, fmt.Errorf("%w: unexpected status %d for product %s", ErrUnavailable, resp.StatusCode, productID)
	}
}
