package credential

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/CaioNunes1/ecommerce-front/internal/client/storage"
	"github.com/CaioNunes1/ecommerce-front/internal/common"
)

func setupStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return storage.NewSQLiteStore(db)
}

// fakeCarrier records the currently attached token.
type fakeCarrier struct {
	token    string
	attached bool
}

func (f *fakeCarrier) SetAuthToken(token string) { f.token = token; f.attached = true }
func (f *fakeCarrier) ClearAuthToken()           { f.token = ""; f.attached = false }

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	token := EncodeToken("a@x.com", "secret")

	email, secret, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
	assert.Equal(t, "secret", secret)
}

func TestDecodeToken_SecretMayContainSeparator(t *testing.T) {
	token := EncodeToken("a@x.com", "se:cr:et")

	email, secret, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
	assert.Equal(t, "se:cr:et", secret)
}

func TestDecodeToken_Malformed(t *testing.T) {
	_, _, err := DecodeToken("%%%not-base64%%%")
	require.ErrorIs(t, err, common.ErrInvalidToken)

	// valid base64 but no separator
	_, _, err = DecodeToken(EncodeToken("", ""))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSet_AttachesHeaderAndPersists(t *testing.T) {
	store := setupStore(t)
	carrier := &fakeCarrier{}
	m := NewManager(store, carrier)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a@x.com", "secret"))

	assert.True(t, carrier.attached)
	assert.Equal(t, EncodeToken("a@x.com", "secret"), carrier.token)

	raw, err := store.Get(ctx, StoreKey)
	require.NoError(t, err)
	assert.Equal(t, EncodeToken("a@x.com", "secret"), string(raw))
}

func TestClear_RemovesHeaderAndStoredToken(t *testing.T) {
	store := setupStore(t)
	carrier := &fakeCarrier{}
	m := NewManager(store, carrier)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a@x.com", "secret"))
	require.NoError(t, m.Clear(ctx))

	assert.False(t, carrier.attached)
	raw, err := store.Get(ctx, StoreKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestClear_WithoutCredentialIsNoop(t *testing.T) {
	store := setupStore(t)
	carrier := &fakeCarrier{}
	m := NewManager(store, carrier)

	require.NoError(t, m.Clear(context.Background()))
	assert.False(t, carrier.attached)
}

func TestRestoreFromStore_ReattachesStoredToken(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	token := EncodeToken("a@x.com", "secret")
	require.NoError(t, store.Set(ctx, StoreKey, []byte(token)))

	carrier := &fakeCarrier{}
	m := NewManager(store, carrier)

	got, err := m.RestoreFromStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.True(t, carrier.attached)
	assert.Equal(t, token, carrier.token)
}

func TestRestoreFromStore_EmptyStoreLeavesNoHeader(t *testing.T) {
	store := setupStore(t)
	carrier := &fakeCarrier{token: "stale", attached: true}
	m := NewManager(store, carrier)

	got, err := m.RestoreFromStore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, carrier.attached)
}
