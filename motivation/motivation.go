// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package motivation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
)

var ErrResourceUnavailable = errors.New("quote source unavailable")

//go:embed quotes.json
var defaultQuotes []byte

// Rotator hands out quotes without repeating one until every quote has
// been used, then starts a new cycle. Safe for concurrent use.
type Rotator struct {
	mu     sync.Mutex
	quotes []string
	used   map[string]struct{}
	rng    *rand.Rand
}

type Option func(*Rotator)

// WithRand sets the random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(r *Rotator) { r.rng = rng }
}

// Load reads a JSON array of quotes from path.
func Load(path string, opts ...Option) (*Rotator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return Parse(data, opts...)
}

// Default returns a rotator over the built-in quotes.
func Default(opts ...Option) (*Rotator, error) {
	return Parse(defaultQuotes, opts...)
}

// Parse builds a rotator from a JSON array of strings. Duplicate quotes are
// collapsed; an empty list is an error.
func Parse(data []byte, opts ...Option) (*Rotator, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return New(raw, opts...)
}

func New(quotes []string, opts ...Option) (*Rotator, error) {
	seen := make(map[string]struct{}, len(quotes))
	unique := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		unique = append(unique, q)
	}
	if len(unique) == 0 {
		return nil, fmt.Errorf("%w: no quotes", ErrResourceUnavailable)
	}

	r := &Rotator{
		quotes: unique,
		used:   make(map[string]struct{}, len(unique)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r, nil
}

// Next returns a quote not yet used in the current cycle.
func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	unused := make([]string, 0, len(r.quotes)-len(r.used))
	for _, q := range r.quotes {
		if _, ok := r.used[q]; !ok {
			unused = append(unused, q)
		}
	}

	pick := unused[r.rng.IntN(len(unused))]
	r.used[pick] = struct{}{}
	if len(r.used) == len(r.quotes) {
		clear(r.used)
	}
	return pick
}

// Len is the number of distinct quotes.
func (r *Rotator) Len() int {
	return len(r.quotes)
}

// Remaining is the number of quotes left in the current cycle.
func (r *Rotator) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.quotes) - len(r.used)
}
