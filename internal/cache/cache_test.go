package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()

	c := New(t.TempDir(), time.Hour)
	c.Set("quote_MC.PA", payload{Symbol: "MC.PA", Price: 612.5})

	var got payload
	require.True(t, c.Get("quote_MC.PA", &got))
	assert.Equal(t, "MC.PA", got.Symbol)
	assert.Equal(t, 612.5, got.Price)
}

func TestGetMiss(t *testing.T) {
	t.Parallel()

	c := New(t.TempDir(), time.Hour)
	var got payload
	assert.False(t, c.Get("nothing", &got))
}

func TestGetExpired(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := New(dir, time.Hour)

	// Plant an envelope with an old timestamp.
	raw, err := json.Marshal(payload{Symbol: "OR.PA"})
	require.NoError(t, err)
	body, err := json.Marshal(envelope{
		CachedAt: time.Now().Add(-2 * time.Hour).UTC(),
		Data:     raw,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.json"), body, 0600))

	var got payload
	assert.False(t, c.Get("stale", &got))
}

func TestGetCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := New(dir, time.Hour)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0600))

	var got payload
	assert.False(t, c.Get("bad", &got))
}

func TestNilCacheIsSafe(t *testing.T) {
	t.Parallel()

	c := New("", time.Hour)
	require.Nil(t, c)
	c.Set("k", payload{})
	var got payload
	assert.False(t, c.Get("k", &got))
}

func TestKeySanitizing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := New(dir, time.Hour)
	c.Set("hist_MC.PA_2025/01/01", payload{Symbol: "MC.PA"})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hist_MC.PA_2025_01_01.json", entries[0].Name())

	var got payload
	assert.True(t, c.Get("hist_MC.PA_2025/01/01", &got))
}
