// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

All dates are DD-MM-YYYY strings.

# Request Types

Types for parsing incoming JSON (validated with package validation):

  - CreateUserRequest: name
  - CreateHabitRequest: name, frequency, start_date, end_date
  - CreateRecordRequest: date, mood, notes, classify_mood
  - UpdateMoodRequest: mood, classify
  - UpdateNotesRequest: notes

# Response Types

Types for JSON responses:

  - HomeResponse, QuoteResponse: greeting and motivational quote
  - CreateUserResponse: user_id, message
  - User: user_id, name, habits
  - Habit: dates, completed_dates, completion_rate
  - MarkResponse: outcome of marking a day
  - CheckResponse, RateResponse: completion queries
  - Record, RecordDetail: record fields, plus the rendered summary
  - MessageResponse: message
  - ErrorResponse: error, message

# Constants

Mark outcomes:

	OutcomeAccepted         = "accepted"
	OutcomeAlreadyCompleted = "already_completed"
	OutcomeOutOfRange       = "out_of_range"

NewUser, NewHabit and NewRecord convert tracker types to their response form.
*/
package models
