// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// Short returns the first n hex characters of a random UUID.
// n is clamped to [1, 32].
func Short(n int) string {
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
