package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/keyspace/keyexpr"
)

func mustKE(t *testing.T, s string) keyexpr.KeyExpr {
	t.Helper()
	ke, err := keyexpr.New(s)
	require.NoError(t, err)
	return ke
}

func openTestBackend(t *testing.T, root string) *Backend {
	t.Helper()
	b, err := Open(":memory:", mustKE(t, root))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestOpenComputesPrefix(t *testing.T) {
	b := openTestBackend(t, "demo/example/**")

	prefix, ok := b.Prefix()
	require.True(t, ok)
	assert.Equal(t, "demo/example", prefix.String())
	assert.Equal(t, "demo/example/**", b.Root().String())

	_, err := uuid.Parse(b.ID())
	assert.NoError(t, err)
}

func TestLocalKey(t *testing.T) {
	b := openTestBackend(t, "demo/example/**")

	local, err := b.LocalKey(mustKE(t, "demo/example/test/a"))
	require.NoError(t, err)
	assert.Equal(t, "test/a", local.String())

	_, err = b.LocalKey(mustKE(t, "demo/example/*"))
	assert.ErrorIs(t, err, ErrWildKey)

	_, err = b.LocalKey(mustKE(t, "other/key"))
	assert.ErrorIs(t, err, ErrOutOfScope)

	// The bare root strips to nothing: it has no local name.
	_, err = b.LocalKey(mustKE(t, "demo/example"))
	assert.ErrorIs(t, err, ErrOutOfScope)
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t, "demo/example/**")
	key := mustKE(t, "demo/example/test/a")

	require.NoError(t, b.Put(ctx, key, []byte("v1")))

	got, err := b.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "test/a", got.Key.String())
	assert.Equal(t, []byte("v1"), got.Value)
	assert.Equal(t, int64(1), got.Seq)

	// Replacement bumps the sequence.
	require.NoError(t, b.Put(ctx, key, []byte("v2")))
	got, err = b.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got.Value)
	assert.Equal(t, int64(2), got.Seq)

	require.NoError(t, b.Delete(ctx, key))
	_, err = b.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, b.Delete(ctx, key))
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t, "demo/example/**")

	samples := map[string]string{
		"demo/example/test/a":  "1",
		"demo/example/test/b":  "2",
		"demo/example/other/a": "3",
	}
	for k, v := range samples {
		require.NoError(t, b.Put(ctx, mustKE(t, k), []byte(v)))
	}

	// Everything under the root.
	got, err := b.Query(ctx, mustKE(t, "demo/example/**"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Deterministic order by local key.
	assert.Equal(t, "other/a", got[0].Key.String())
	assert.Equal(t, "test/a", got[1].Key.String())
	assert.Equal(t, "test/b", got[2].Key.String())

	// Wildcarded selector across subtrees.
	got, err = b.Query(ctx, mustKE(t, "demo/**/a"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "other/a", got[0].Key.String())
	assert.Equal(t, "test/a", got[1].Key.String())

	// Selector outside the root matches nothing.
	got, err = b.Query(ctx, mustKE(t, "not/a/prefix/**"))
	require.NoError(t, err)
	assert.Empty(t, got)

	// Cached plan: same selector again yields the same result.
	again, err := b.Query(ctx, mustKE(t, "demo/**/a"))
	require.NoError(t, err)
	require.Len(t, again, 2)
}

func TestBackendWithoutPrefix(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t, "**")

	_, ok := b.Prefix()
	assert.False(t, ok)

	key := mustKE(t, "x/y")
	local, err := b.LocalKey(key)
	require.NoError(t, err)
	assert.Equal(t, "x/y", local.String())

	require.NoError(t, b.Put(ctx, key, []byte("v")))
	got, err := b.Query(ctx, mustKE(t, "x/**"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x/y", got[0].Key.String())
}
