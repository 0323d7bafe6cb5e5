// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package motivation serves motivational quotes in random order, cycling
// through the whole list before any quote repeats.
package motivation
