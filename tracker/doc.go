// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tracker contains the habit tracking domain: users, habits, and records.

# Dates

Every date in the API is a calendar day written DD-MM-YYYY:

	d, err := tracker.ParseDate("05-11-2025")

Malformed input fails with ErrInvalidDateFormat.

# Habits

A habit covers an inclusive date range and keeps a set of completed days:

	h, _ := tracker.NewHabit("Reading", "daily", "01-11-2025", "30-11-2025")
	h.MarkCompleted("05-11-2025") // MarkAccepted
	h.MarkCompleted("05-11-2025") // MarkAlreadyCompleted
	h.MarkCompleted("01-12-2025") // MarkOutOfRange
	h.CompletionRate()            // 3.33

Marking is idempotent: one completion per day.

# Records

Records attach mood and notes to a day of a habit. Their constructor does not
check the habit's range; the request layer does.
*/
package tracker
