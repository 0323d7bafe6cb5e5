// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the habit tracker API.

# Handler Types

Each handler is a struct over the narrow store interface it needs:

  - HomeHandler: Greeting and motivational quotes
  - UserHandler: User creation, lookup and removal
  - HabitHandler: Habit lifecycle, completion marks, rate and chart
  - RecordHandler: Dated mood/notes records attached to a habit

Handlers are created via constructor functions. The *store.Store satisfies
every store interface:

	habitHandler := handlers.NewHabitHandler(st, validate)

# Habit Lookup

Habits are addressed by name. When several users track a habit with the
same name, ?user_id= narrows the lookup; without it the oldest habit wins.

	POST /habits/{habit_name}/mark/{day}  → MarkCompleted
	GET  /habits/{habit_name}/check/{day} → CheckCompleted
	GET  /habits/{habit_name}/rate        → CompletionRate
	GET  /habits/{habit_name}/chart       → CompletionChart (PDF)

Days use the DD-MM-YYYY form. Marking a day outside the habit period
returns 422; marking an already completed day returns 200 with outcome
"already_completed".

# Records

	POST /habits/{habit_name}/records                      → CreateRecord
	POST /habits/{habit_name}/records/{record_id}/mood     → UpdateMood
	POST /habits/{habit_name}/records/{record_id}/notes    → UpdateNotes

With classify set, the mood text is replaced by its sentiment label.

# Mocks

QuoteSource, UserStore and MoodClassifier mocks are generated into
mocks/handlers with go generate.
*/
package handlers
