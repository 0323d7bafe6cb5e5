// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the habit tracker API server.

The habit tracker keeps per-user habits over a date range, records which
days were completed, and stores dated mood/notes records. Mood text can be
reduced to a sentiment label, and every greeting carries a motivational
quote that does not repeat until all quotes have been shown.

# Starting the Server

With no configuration the server uses a local sqlite file:

	go run . -p 8080

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Settings come from flags, then environment (a .env file is loaded if
present), then an optional config file (-c or HABIT_TRACKER_CONFIG):

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file or postgres connection string
  - QUOTES_FILE (--quotes-file): JSON array of quotes (default: built-in)
  - MOOD_LOCALE (--mood-locale): en or ru
  - LOG_LEVEL, LOG_FORMAT, LOG_FILE: logging setup

# Architecture

  - tracker: Users, habits, records and calendar dates
  - mood: Sentiment labels for mood text
  - motivation: Non-repeating quote rotation
  - store: SQL persistence (sqlx)
  - db: Connections and goose migrations
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - validation: Request validation with readable messages
  - report: PDF completion charts
  - logging: slog setup over charmbracelet/log
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
