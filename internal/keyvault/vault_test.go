package keyvault

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/cryptonote/internal/cryptox"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ cryptox.AEADKey = (*Key)(nil)

// countingBoundary records how many keys were stored.
type countingBoundary struct {
	*MemoryBoundary
	stores atomic.Int32
}

func (c *countingBoundary) Store(ctx context.Context, alias string, key []byte) error {
	c.stores.Add(1)
	return c.MemoryBoundary.Store(ctx, alias, key)
}

func newVault(t *testing.T, b Boundary) *Vault {
	t.Helper()
	return New(b, rand.Reader, logging.Discard())
}

// storeFailsBoundary reports every alias as absent and refuses to store,
// keeping the slice it was handed.
type storeFailsBoundary struct {
	*MemoryBoundary
	handed []byte
}

func (b *storeFailsBoundary) Store(_ context.Context, _ string, key []byte) error {
	b.handed = key
	return ErrKeyUnavailable
}

func TestGetOrCreateKey_Idempotent(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()
	v := newVault(t, b)

	has, err := v.HasKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)
	assert.False(t, has)

	k1, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)
	k2, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)

	assert.Same(t, k1, k2)
	assert.Equal(t, cryptox.NoteKeyAlias, k1.Alias())

	has, err = b.Has(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestGetOrCreateKey_ConcurrentCreatesOnce(t *testing.T) {
	ctx := context.Background()
	b := &countingBoundary{MemoryBoundary: NewMemoryBoundary()}
	v := newVault(t, b)

	const n = 32
	keys := make([]*Key, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k, err := v.GetOrCreateKey(ctx, cryptox.IntegrityKeyAlias)
			assert.NoError(t, err)
			keys[i] = k
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), b.stores.Load())
	for _, k := range keys {
		assert.Same(t, keys[0], k)
	}
}

func TestVault_KeySurvivesNewVaultOverSameBoundary(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()

	payload, err := newVault(t, b).EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("Groceries"))
	require.NoError(t, err)

	pt, err := newVault(t, b).DecryptUnder(ctx, cryptox.NoteKeyAlias, payload)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", string(pt))
}

func TestVault_MissingKey(t *testing.T) {
	ctx := context.Background()
	v := newVault(t, NewMemoryBoundary())

	_, err := v.Key(ctx, "never-created")
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = v.DecryptUnder(ctx, "never-created", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestVault_AliasesAreNotInterchangeable(t *testing.T) {
	ctx := context.Background()
	v := newVault(t, NewMemoryBoundary())

	payload, err := v.EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("body"))
	require.NoError(t, err)

	_, err = v.GetOrCreateKey(ctx, cryptox.IntegrityKeyAlias)
	require.NoError(t, err)

	_, err = v.DecryptUnder(ctx, cryptox.IntegrityKeyAlias, payload)
	require.ErrorIs(t, err, cryptox.ErrAuthenticationFailed)
}

func TestVault_Unavailable(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()
	b.SetUnavailable(true)
	v := newVault(t, b)

	_, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.ErrorIs(t, err, ErrKeyUnavailable)

	_, err = v.HasKey(ctx, cryptox.NoteKeyAlias)
	require.ErrorIs(t, err, ErrKeyUnavailable)

	_, err = v.Key(ctx, cryptox.NoteKeyAlias)
	require.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestVault_CachedKeyUsableWhenBoundaryGoesAway(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()
	v := newVault(t, b)

	_, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)

	b.SetUnavailable(true)

	has, err := v.HasKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)
	assert.True(t, has)

	_, err = v.EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("x"))
	require.NoError(t, err)
}

func TestVault_CorruptStoredKey(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()
	require.NoError(t, b.Store(ctx, cryptox.NoteKeyAlias, []byte("short")))

	_, err := newVault(t, b).GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestVault_RandomFailure(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()
	v := New(b, bytes.NewReader([]byte{1, 2, 3}), logging.Discard())

	_, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.Error(t, err)

	has, err := b.Has(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)
	assert.False(t, has, "nothing may be stored when generation fails")
}

func TestKey_WithEnvelope(t *testing.T) {
	ctx := context.Background()
	v := newVault(t, NewMemoryBoundary())
	k, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)

	env := cryptox.NewEnvelope(rand.Reader)
	payload, err := env.Seal(k, []byte("hello"))
	require.NoError(t, err)

	got, err := env.Open(k, payload)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestKey_AEADIsAESGCM(t *testing.T) {
	ctx := context.Background()
	k, err := newVault(t, NewMemoryBoundary()).GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)

	g, err := k.AEAD()
	require.NoError(t, err)
	assert.Equal(t, cryptox.NonceSize, g.NonceSize())
	assert.Equal(t, cryptox.TagSize, g.Overhead())
}

func TestEncryptUnder_FreshNoncePerCall(t *testing.T) {
	ctx := context.Background()
	v := newVault(t, NewMemoryBoundary())

	p1, err := v.EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("attack at dawn!!"))
	require.NoError(t, err)
	p2, err := v.EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("attack at dawn!!"))
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)

	raw1, err := base64.StdEncoding.DecodeString(p1)
	require.NoError(t, err)
	raw2, err := base64.StdEncoding.DecodeString(p2)
	require.NoError(t, err)
	assert.NotEqual(t, raw1[:cryptox.NonceSize], raw2[:cryptox.NonceSize])

	for _, p := range []string{p1, p2} {
		got, err := v.DecryptUnder(ctx, cryptox.NoteKeyAlias, p)
		require.NoError(t, err)
		assert.Equal(t, "attack at dawn!!", string(got))
	}
}

func TestEncryptUnder_NonceFromVaultRandomSource(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoundary()
	_, err := newVault(t, b).GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.NoError(t, err)

	// the key already exists, so the only read is the nonce
	v := New(b, bytes.NewReader([]byte{1, 2, 3}), logging.Discard())
	_, err = v.EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("x"))
	require.ErrorContains(t, err, "generate nonce")
}

func TestDecryptUnder_TamperedPayload(t *testing.T) {
	ctx := context.Background()
	v := newVault(t, NewMemoryBoundary())

	payload, err := v.EncryptUnder(ctx, cryptox.NoteKeyAlias, []byte("body"))
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	raw[cryptox.NonceSize] ^= 0x01

	_, err = v.DecryptUnder(ctx, cryptox.NoteKeyAlias, base64.StdEncoding.EncodeToString(raw))
	require.ErrorIs(t, err, cryptox.ErrAuthenticationFailed)
}

func TestGenerate_WipesKeyWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	b := &storeFailsBoundary{MemoryBoundary: NewMemoryBoundary()}
	v := newVault(t, b)

	_, err := v.GetOrCreateKey(ctx, cryptox.NoteKeyAlias)
	require.ErrorIs(t, err, ErrKeyUnavailable)

	require.Len(t, b.handed, cryptox.KeySize)
	assert.Equal(t, make([]byte, cryptox.KeySize), b.handed)
}
