// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen generates identifiers for users, habits, and records.

All identifiers are random UUIDs:

	userID := idgen.New() // "6f1c2d1e-..."

Short produces a compact hex prefix for places where a full UUID is noisy,
such as log correlation:

	reqID := idgen.Short(8) // "6f1c2d1e"
*/
package idgen
