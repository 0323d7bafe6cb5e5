// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging builds the process logger. Callers log through log/slog;
// output goes through charmbracelet/log and, optionally, a lumberjack
// rotating file.
package logging
