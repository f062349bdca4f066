// Package api is the boundary to the remote storefront backend. It exposes
// the backend's operations as typed Go calls; response bodies are decoded
// into explicit schemas at this boundary and never leak raw JSON upward.
package api

import (
	"context"
	"time"
)

// User is the backend's user record. Name and Role are optional on the wire.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Category is a product category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku,omitempty"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// ProductInput carries the writable product fields for create/update calls.
type ProductInput struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CategoryID  int64   `json:"categoryId,omitempty"`
}

// OrderItem is a line of a placed order.
type OrderItem struct {
	ID              int64   `json:"id,omitempty"`
	Product         Product `json:"product"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	ID        int64       `json:"id"`
	User      User        `json:"user"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

// OrderItemRequest is a line of an order creation request.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Client defines the remote operations the storefront consumes.
//
// Auth: SetAuthToken installs a Basic authorization header carried by every
// subsequent request until ClearAuthToken removes it. Only the credential
// manager is supposed to call these two.
type Client interface {
	SetAuthToken(token string)
	ClearAuthToken()

	FindUserByEmail(ctx context.Context, email string) (*User, error)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, name, email, password string) (*User, error)

	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)

	CreateOrder(ctx context.Context, userID int64, items []OrderItemRequest) (*Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context) ([]Order, error)

	// Admin surface.
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUserByEmail(ctx context.Context, email string) error
	ListAdminOrders(ctx context.Context) ([]Order, error)
}
