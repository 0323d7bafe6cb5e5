// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: sqlite file or postgres connection string (default: habits.db)
  - QuotesFile: JSON array of quotes (default: built-in list)
  - MoodLocale: language of mood labels, en or ru (default: en)
  - LogLevel, LogFormat, LogFile: see package logging

# CLI Flags

	-p, --port           Server port
	-t, --database-type  Database type
	-d, --database-url   Database URL
	--quotes-file        Quotes file
	--mood-locale        Mood label language
	--log-level          Log level
	--log-format         Log format
	--log-file           Rotating log file
	-c, --config         Config file (yaml, json or toml)
	--env-file           .env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	QUOTES_FILE   → --quotes-file
	MOOD_LOCALE   → --mood-locale
	LOG_LEVEL     → --log-level
	LOG_FORMAT    → --log-format
	LOG_FILE      → --log-file
	HABIT_TRACKER_CONFIG → -c

Variables in the .env file are loaded first and never replace ones already
set in the environment.

# Precedence

CLI flags > environment > config file > defaults.

# Validation

ParseFlags returns an error for unknown database types or locales, ports
outside 1-65535, and unknown log levels or formats.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(deps)
*/
package cliparse
