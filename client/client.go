// Package client is a thin Go client for the Nexora API. It mirrors what the
// web frontend does, including cart checkout: one independent order request
// per cart item, issued concurrently, with per-item outcomes.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"nexora-backend/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Health reports whether the backend answers its health check.
func (c *Client) Health() error {
	return c.do(http.MethodGet, "/api/health", nil, nil)
}

func (c *Client) ListServices() ([]models.Service, error) {
	var services []models.Service
	if err := c.do(http.MethodGet, "/api/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(title, description string, price float64) (*models.Service, error) {
	body := map[string]any{
		"title":       title,
		"description": description,
		"price":       price,
	}
	var service models.Service
	if err := c.do(http.MethodPost, "/api/services", body, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) DeleteService(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/services/%d", id), nil, nil)
}

func (c *Client) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(customerName, email string, serviceID uint) (*models.Order, error) {
	body := map[string]any{
		"customerName": customerName,
		"email":        email,
		"serviceId":    serviceID,
	}
	var order models.Order
	if err := c.do(http.MethodPost, "/api/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CartResult reports the outcome of one item in a cart submission.
type CartResult struct {
	ServiceID uint
	Order     *models.Order
	Err       error
}

// SubmitCart places one order per cart item. The requests are issued
// concurrently and independently; a failed item does not roll back the rest,
// so callers see partial success rather than a single pass/fail verdict.
// Results are returned in cart order.
func (c *Client) SubmitCart(customerName, email string, serviceIDs []uint) []CartResult {
	results := make([]CartResult, len(serviceIDs))

	var wg sync.WaitGroup
	for i, id := range serviceIDs {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			order, err := c.CreateOrder(customerName, email, id)
			results[i] = CartResult{ServiceID: id, Order: order, Err: err}
		}(i, id)
	}
	wg.Wait()

	return results
}

func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = res.Status
		}
		return &APIError{StatusCode: res.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
