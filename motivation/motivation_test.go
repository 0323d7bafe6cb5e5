// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package motivation

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(1, 2)))
}

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.Len(), 10)
	assert.NotEmpty(t, r.Next())
}

func TestNext_UniqueWithinCycle(t *testing.T) {
	r, err := Default(seeded())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < r.Len(); i++ {
		q := r.Next()
		assert.False(t, seen[q], "quote repeated before the cycle ended: %q", q)
		seen[q] = true
	}
	assert.Len(t, seen, r.Len())
	assert.Equal(t, r.Len(), r.Remaining(), "used set should reset after a full cycle")
}

func TestNext_EveryQuoteReachableAcrossCycles(t *testing.T) {
	quotes := []string{"a", "b", "c"}
	r, err := New(quotes, seeded())
	require.NoError(t, err)

	for cycle := 0; cycle < 5; cycle++ {
		got := make(map[string]bool)
		for i := 0; i < len(quotes); i++ {
			got[r.Next()] = true
		}
		assert.Len(t, got, len(quotes), "cycle %d", cycle)
	}
}

func TestNext_SingleQuote(t *testing.T) {
	r, err := New([]string{"only"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "only", r.Next())
	}
}

func TestNew_DuplicatesCollapsed(t *testing.T) {
	r, err := New([]string{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(`["one","two"]`), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not":"a list"}`), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestNext_Concurrent(t *testing.T) {
	r, err := New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Next()
			}
		}()
	}
	wg.Wait()
	// 800 picks over 4 quotes is a whole number of cycles
	assert.Equal(t, 4, r.Remaining())
}
