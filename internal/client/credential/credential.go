// Package credential owns the single active credential: it encodes the
// identifier/secret pair into a transport token, installs the token on the
// API client, and keeps it persisted across restarts.
package credential

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/CaioNunes1/ecommerce-front/internal/client/storage"
	"github.com/CaioNunes1/ecommerce-front/internal/common"
)

// StoreKey is the durable-store key holding the encoded credential token.
const StoreKey = "authBasic"

// TokenCarrier attaches or removes the authorization token on outbound
// requests. Implemented by the API client.
type TokenCarrier interface {
	SetAuthToken(token string)
	ClearAuthToken()
}

// Manager holds the process-wide credential. Exactly one credential is
// active at a time; Set replaces any previous one.
type Manager struct {
	store   storage.Store
	carrier TokenCarrier
}

// NewManager binds the manager to its durable store and token carrier.
func NewManager(store storage.Store, carrier TokenCarrier) *Manager {
	return &Manager{store: store, carrier: carrier}
}

// EncodeToken encodes "email:secret" as base64. This is a reversible
// transport encoding, not encryption; the token carries the secret and the
// store must be treated accordingly.
func EncodeToken(email, secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + secret))
}

// DecodeToken reverses EncodeToken. Malformed base64 or a payload without
// the ':' separator yields common.ErrInvalidToken.
func DecodeToken(token string) (email, secret string, err error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	email, secret, ok := strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return "", "", common.ErrInvalidToken
	}
	return email, secret, nil
}

// Set encodes the pair, attaches the token to outbound requests, and
// persists it. The header is attached even if persistence fails, so the
// caller can still roll everything back with Clear.
func (m *Manager) Set(ctx context.Context, email, secret string) error {
	token := EncodeToken(email, secret)
	m.carrier.SetAuthToken(token)
	if err := m.store.Set(ctx, StoreKey, []byte(token)); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	return nil
}

// Clear removes the outbound header and deletes the stored token. Clearing
// an absent credential is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	return m.ClearWithin(ctx, m.store)
}

// ClearWithin clears the credential using the provided store view, which may
// be a transactional one. The manager keeps ownership of its key; callers
// only choose the transaction the deletion participates in. The outbound
// header is removed unconditionally, even if the deletion later rolls back.
func (m *Manager) ClearWithin(ctx context.Context, s storage.Store) error {
	m.carrier.ClearAuthToken()
	if err := s.Delete(ctx, StoreKey); err != nil {
		return fmt.Errorf("delete stored credential: %w", err)
	}
	return nil
}

// RestoreFromStore reads the persisted token and re-attaches it to outbound
// requests. It returns the token, or "" when none is stored (in which case
// no header is attached). Must run before any component issues authorized
// network calls.
func (m *Manager) RestoreFromStore(ctx context.Context) (string, error) {
	raw, err := m.store.Get(ctx, StoreKey)
	if err != nil {
		return "", fmt.Errorf("read stored credential: %w", err)
	}
	if len(raw) == 0 {
		m.carrier.ClearAuthToken()
		return "", nil
	}
	token := string(raw)
	m.carrier.SetAuthToken(token)
	return token, nil
}
