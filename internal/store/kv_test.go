package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "nested", "sbudget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKV_GetMissing(t *testing.T) {
	kv := openTestKV(t)

	v, ok, err := kv.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestKV_SetGetDelete(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("a", "2"))

	v, ok, err := kv.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	require.NoError(t, kv.Delete("a"))
	require.NoError(t, kv.Delete("a"))
	_, ok, err = kv.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_SetManyAndKeys(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.SetMany(map[string]string{"b": "x", "a": "y"}))
	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestKV_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbudget.db")
	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(KeyIncome, "50000"))
	require.NoError(t, kv.Close())

	kv, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	v, ok, err := kv.Get(KeyIncome)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "50000", v)
}
