// Package cart maintains the shopping cart: an ordered set of product lines
// that survives restarts. Every mutation is written through to the durable
// store before it returns, so in-memory state and the snapshot on disk are
// never observably apart.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/CaioNunes1/ecommerce-front/internal/client/storage"
	"github.com/CaioNunes1/ecommerce-front/internal/logging"
)

// StoreKey is the durable-store key holding the serialized cart snapshot.
const StoreKey = "ecom_cart_v1"

// Item is one cart line. Quantity is always positive; a line that would drop
// to zero is removed instead.
type Item struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Manager owns the cart. Insertion order of lines is preserved and no two
// lines share a ProductID.
type Manager struct {
	store storage.Store
	log   logging.Logger

	mu    sync.Mutex
	items []Item
}

// New loads the persisted snapshot and returns a ready cart. A missing or
// unparseable snapshot falls back to an empty cart; boot never fails on
// cart state.
func New(ctx context.Context, store storage.Store, log logging.Logger) *Manager {
	m := &Manager{store: store, log: log.With("component", "cart")}

	raw, err := store.Get(ctx, StoreKey)
	if err != nil {
		m.log.Warn(ctx, "could not read cart snapshot, starting empty", "error", err)
		return m
	}
	if len(raw) == 0 {
		return m
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		m.log.Warn(ctx, "cart snapshot is corrupt, starting empty", "error", err)
		return m
	}
	// Drop lines that violate the invariants rather than guessing at them.
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if _, dup := seen[it.ProductID]; dup {
			continue
		}
		seen[it.ProductID] = struct{}{}
		m.items = append(m.items, it)
	}
	return m
}

// Add puts qty units of the product into the cart, merging with an existing
// line for the same product. A qty below 1 counts as 1.
func (m *Manager) Add(ctx context.Context, productID int64, qty int) {
	if qty < 1 {
		qty = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity += qty
			m.persist(ctx)
			return
		}
	}
	m.items = append(m.items, Item{ProductID: productID, Quantity: qty})
	m.persist(ctx)
}

// Remove deletes the line for the product, if present.
func (m *Manager) Remove(ctx context.Context, productID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(ctx, productID)
}

func (m *Manager) removeLocked(ctx context.Context, productID int64) {
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist(ctx)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line. Setting a quantity on a product that is not in
// the cart is a no-op; it does not create a line.
func (m *Manager) SetQuantity(ctx context.Context, productID int64, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(ctx, productID)
		return
	}
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			m.persist(ctx)
			return
		}
	}
}

// Clear empties the cart, e.g. after a successful checkout.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.persist(ctx)
}

// Items returns a copy of the cart lines in insertion order.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Item(nil), m.items...)
}

// TotalItems returns the sum of all line quantities.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, it := range m.items {
		total += it.Quantity
	}
	return total
}

// persist writes the full cart under StoreKey. Called with the mutex held.
// The in-memory cart stays authoritative when the write fails; the failure
// is logged, not surfaced.
func (m *Manager) persist(ctx context.Context) {
	raw, err := json.Marshal(m.items)
	if err != nil {
		m.log.Error(ctx, "failed to encode cart", "error", err)
		return
	}
	if err := m.store.Set(ctx, StoreKey, raw); err != nil {
		m.log.Warn(ctx, "failed to persist cart", "error", err)
	}
}
