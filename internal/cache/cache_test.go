package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDeterministic(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("a", "b"), Key("a", "c"))
	assert.Len(t, Key("x"), 64)
}

func TestLoadMiss(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, ok := Load(Key("never-stored"))
	assert.False(t, ok)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	key := Key("assessment-v1", "deadbeef")
	require.NoError(t, Store(key, []byte(`{"score":50}`)))

	got, ok := Load(key)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"score":50}`), got)
}
