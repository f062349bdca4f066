package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/CaioNunes1/ecommerce-front/internal/common"
	"github.com/CaioNunes1/ecommerce-front/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient talks JSON over HTTP to the storefront backend.
//
// The authorization token is process-wide client state: once installed via
// SetAuthToken it rides on every request until ClearAuthToken. Access is
// guarded because the session restore runs concurrently with the first
// user-driven calls.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu        sync.RWMutex
	authToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the backend at baseURL. The timeout is
// the per-request transport default; no other deadline is enforced.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
}

func (c *HTTPClient) ClearAuthToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = ""
}

// do executes one request. A non-nil out is decoded from the response body;
// a body that does not match yields a *DecodeError.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.mu.RLock()
	token := c.authToken
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Basic "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, common.ErrorUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, common.ErrorNotFound)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s %s: status %s: %w", method, path, resp.Status, ErrUnavailable)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Op: method + " " + path, Err: err}
	}
	return nil
}

func validUser(op string, u *User) (*User, error) {
	if u.ID == 0 || u.Email == "" {
		return nil, &DecodeError{Op: op, Err: errors.New("user record missing id or email")}
	}
	return u, nil
}

func (c *HTTPClient) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	q := url.Values{"email": []string{email}}
	if err := c.do(ctx, http.MethodGet, "/user/findByEmail", q, nil, &u); err != nil {
		return nil, err
	}
	return validUser("GET /user/findByEmail", &u)
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/login", nil, payload, nil)
}

func (c *HTTPClient) SignUp(ctx context.Context, name, email, password string) (*User, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	var u User
	if err := c.do(ctx, http.MethodPost, "/user/create", nil, payload, &u); err != nil {
		return nil, err
	}
	return validUser("POST /user/create", &u)
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/findAll", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, userID int64, items []OrderItemRequest) (*Order, error) {
	payload := struct {
		UserID int64              `json:"userId"`
		Items  []OrderItemRequest `json:"items"`
	}{UserID: userID, Items: items}

	var o Order
	if err := c.do(ctx, http.MethodPost, "/orders/create", nil, payload, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders/findAll", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodPost, "/admin/products", nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*Product, error) {
	var p Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/products/%d", id), nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/products/%d", id), nil, nil, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/findAllUsers", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) DeleteUserByEmail(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodDelete, "/user/deleteByEmail/"+url.PathEscape(email), nil, nil, nil)
}

func (c *HTTPClient) ListAdminOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
