package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "cache"), 24, true)
	require.NoError(t, err)

	hash := HashBytes([]byte("file contents"))
	require.NoError(t, c.Set("src/app.js", hash, []byte(`{"score":90}`)))

	data, ok := c.Get("src/app.js", hash)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"score":90}`), data)
}

func TestCacheMissOnDifferentHash(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "cache"), 24, true)
	require.NoError(t, err)

	require.NoError(t, c.Set("a.js", HashBytes([]byte("v1")), []byte("one")))

	_, ok := c.Get("a.js", HashBytes([]byte("v2")))
	assert.False(t, ok)
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "cache"), 24, true)
	require.NoError(t, err)

	_, ok := c.Get("never-stored.js", "whatever")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "cache"), 0, true)
	require.NoError(t, err)

	hash := HashBytes([]byte("content"))
	require.NoError(t, c.Set("a.js", hash, []byte("data")))

	// zero TTL means every entry is already expired
	_, ok := c.Get("a.js", hash)
	assert.False(t, ok)
}

func TestCacheDisabled(t *testing.T) {
	c, err := New("", 24, false)
	require.NoError(t, err)

	assert.NoError(t, c.Set("a.js", "h", []byte("data")))
	_, ok := c.Get("a.js", "h")
	assert.False(t, ok)
	assert.NoError(t, c.Clear())

	stats, err := c.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)
}

func TestCacheClearAndStats(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "cache"), 24, true)
	require.NoError(t, err)

	require.NoError(t, c.Set("a.js", "h1", []byte("one")))
	require.NoError(t, c.Set("b.js", "h2", []byte("two")))

	stats, err := c.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Greater(t, stats.TotalSize, int64(0))

	require.NoError(t, c.Clear())
	_, ok := c.Get("a.js", "h1")
	assert.False(t, ok)
}

func TestHashBytesStable(t *testing.T) {
	assert.Equal(t, HashBytes([]byte("abc")), HashBytes([]byte("abc")))
	assert.NotEqual(t, HashBytes([]byte("abc")), HashBytes([]byte("abd")))
	assert.Len(t, HashBytes(nil), 64)
}
