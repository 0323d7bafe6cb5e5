// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and applies the schema.

# Drivers

Two database types are supported:

  - sqlite: modernc.org/sqlite (pure Go), url is a file path or ":memory:"
  - postgres: github.com/lib/pq, url is a connection string

	conn, err := db.Open(ctx, "sqlite", "habits.db")
	if err != nil {
		log.Fatal(err)
	}

# Migrations

Migrate runs the goose migrations embedded from db/migrations:

	if err := db.Migrate(ctx, conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call on every start; applied versions are skipped.

# Tables

  - users: id, username
  - habits: id, title, frequency, start_date, end_date, user_id
  - records: id, date, mood, notes, habit_id
  - completions: (habit_id, date) pairs, one per completed day

Dates are stored as ISO YYYY-MM-DD text so they sort and compare as strings.
Habit titles are unique per user.

# Relationships

	users 1──* habits
	habits 1──* records
	habits 1──* completions
*/
package db
