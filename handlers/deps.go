// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

//go:generate mockgen -destination=../mocks/handlers/mocks.go -package=mock_handlers github.com/danielhkuo/habit-tracker/handlers QuoteSource,UserStore,MoodClassifier

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/tracker"
)

type QuoteSource interface {
	Next() string
}

type UserStore interface {
	CreateUser(ctx context.Context, u *tracker.User) error
	GetUser(ctx context.Context, id string) (*tracker.User, error)
	ListUsers(ctx context.Context) ([]*tracker.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type HabitFinder interface {
	FindHabit(ctx context.Context, title, userID string) (*tracker.Habit, error)
}

type HabitStore interface {
	HabitFinder
	CreateHabit(ctx context.Context, h *tracker.Habit) error
	DeleteHabit(ctx context.Context, userID, title string) (bool, error)
	ListHabits(ctx context.Context) ([]*tracker.Habit, error)
	AddCompletion(ctx context.Context, habitID string, d tracker.Date) error
}

type RecordStore interface {
	HabitFinder
	CreateRecord(ctx context.Context, r *tracker.Record) error
	GetRecord(ctx context.Context, id string) (*tracker.Record, error)
	ListRecords(ctx context.Context) ([]*tracker.Record, error)
	ListHabitRecords(ctx context.Context, habitID string) ([]*tracker.Record, error)
	UpdateRecordMood(ctx context.Context, id, mood string) error
	UpdateRecordNotes(ctx context.Context, id, notes string) error
}

// MoodClassifier overwrites a record's mood with its sentiment label.
type MoodClassifier interface {
	Apply(rec *tracker.Record) string
}

// findHabit resolves {habit_name}, narrowed by the optional ?user_id= query
// parameter. It writes the error response itself and reports whether the
// caller may continue.
func findHabit(w http.ResponseWriter, r *http.Request, finder HabitFinder) (*tracker.Habit, bool) {
	name := r.PathValue("habit_name")
	userID := r.URL.Query().Get("user_id")

	habit, err := finder.FindHabit(r.Context(), name, userID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Habit not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load habit", "habit", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return habit, true
}
