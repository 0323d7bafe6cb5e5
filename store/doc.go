// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store maps the tracker domain types onto the SQL schema created by
package db.

A single Store is created at startup and shared by every handler:

	st := store.New(conn)
	habit, err := st.FindHabit(ctx, "Running", "")

# Errors

Lookups of absent users, habits or records return an error wrapping
ErrNotFound. Creating a second habit with the same title for one user
returns ErrAlreadyExists. Callers match with errors.Is.

# Transactions

Deleting a user or a habit touches several tables and runs in one
transaction. Completions are inserted with ON CONFLICT DO NOTHING, so
marking the same day twice from concurrent requests leaves one row.
*/
package store
