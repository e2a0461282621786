package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prefix scans must return exactly the keys set under the prefix, whatever the insert order.
func TestMemoryStoreGetByPrefixCompleteAndExclusive(t *testing.T) {
	ctx := context.Background()
	prefixes := []string{"member:", "payment:", "access:", "mem"}

	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		store := NewMemoryStore()
		expected := make(map[string]map[string]bool)

		for i := 0; i < 200; i++ {
			kind := []string{"member", "payment", "access", "memo"}[rng.IntN(4)]
			key := fmt.Sprintf("%s:%d", kind, rng.IntN(50))
			require.NoError(t, store.Set(ctx, key, map[string]any{"key": key}))

			for _, p := range prefixes {
				if strings.HasPrefix(key, p) {
					if expected[p] == nil {
						expected[p] = make(map[string]bool)
					}
					expected[p][key] = true
				}
			}
		}

		for _, p := range prefixes {
			entries, err := store.GetByPrefix(ctx, p)
			require.NoError(t, err)

			got := make(map[string]bool)
			for _, e := range entries {
				assert.True(t, strings.HasPrefix(e.Key, p), "key %s outside prefix %s", e.Key, p)
				assert.False(t, got[e.Key], "duplicated key %s", e.Key)
				got[e.Key] = true
			}
			assert.Equal(t, len(expected[p]), len(got), "seed %d prefix %s", seed, p)
		}
	}
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "member:1", map[string]string{"name": "v1"}))
	require.NoError(t, store.Set(ctx, "member:1", map[string]string{"name": "v2"}))

	entries, err := store.GetByPrefix(ctx, "member:")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.JSONEq(t, `{"name":"v2"}`, string(entries[0].Value))
}

func TestMemoryStoreEmptyScan(t *testing.T) {
	entries, err := NewMemoryStore().GetByPrefix(context.Background(), "payment:")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestMemoryStoreRejectsUnencodable(t *testing.T) {
	store := NewMemoryStore()

	err := store.Set(context.Background(), "member:1", make(chan int))
	assert.Error(t, err)

	err = store.Set(context.Background(), "member:2", json.RawMessage(`{broken`))
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "access:1", map[string]int{"n": 1}))

	first, err := store.GetByPrefix(ctx, "access:")
	require.NoError(t, err)
	first[0].Value[1] = 'X'

	second, err := store.GetByPrefix(ctx, "access:")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(second[0].Value))
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()
	assert.ErrorIs(t, store.Set(ctx, "member:1", 1), context.Canceled)

	_, err := store.GetByPrefix(ctx, "member:")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeSkipsBrokenEntries(t *testing.T) {
	entries := []Entry{
		{Key: "member:1", Value: json.RawMessage(`{"name":"김민수"}`)},
		{Key: "member:2", Value: json.RawMessage(`[1,2]`)},
	}

	var failed []string
	out := Decode[struct {
		Name string `json:"name"`
	}](entries, func(key string, err error) { failed = append(failed, key) })

	require.Len(t, out, 1)
	assert.Equal(t, "김민수", out[0].Name)
	assert.Equal(t, []string{"member:2"}, failed)
}
