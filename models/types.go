// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/habit-tracker/tracker"

// Mark outcomes, as reported in MarkResponse.Outcome
const (
	OutcomeAccepted         = "accepted"
	OutcomeAlreadyCompleted = "already_completed"
	OutcomeOutOfRange       = "out_of_range"
)

// Request types

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateHabitRequest struct {
	Name      string `json:"name" validate:"required"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date" validate:"required,ddmmyyyy"`
	EndDate   string `json:"end_date" validate:"required,ddmmyyyy"`
}

type CreateRecordRequest struct {
	Date  string `json:"date" validate:"required,ddmmyyyy"`
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
	// ClassifyMood replaces Mood with its sentiment label
	ClassifyMood bool `json:"classify_mood"`
}

type UpdateMoodRequest struct {
	Mood     string `json:"mood"`
	Classify bool   `json:"classify"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type HomeResponse struct {
	Message string `json:"message"`
	Quote   string `json:"motivational_quote"`
}

type QuoteResponse struct {
	Quote string `json:"quote"`
}

type CreateUserResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type User struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name"`
	Habits []string `json:"habits"`
}

type Habit struct {
	HabitID        string   `json:"habit_id"`
	Name           string   `json:"name"`
	Frequency      string   `json:"frequency"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	UserID         string   `json:"user_id"`
	CompletedDates []string `json:"completed_dates"`
	CompletionRate float64  `json:"completion_rate"`
}

type MarkResponse struct {
	Habit   string `json:"habit"`
	Date    string `json:"date"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

type CheckResponse struct {
	Habit     string `json:"habit"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type RateResponse struct {
	Habit         string  `json:"habit"`
	Rate          float64 `json:"rate"`
	CompletedDays int     `json:"completed_days"`
	TotalDays     int     `json:"total_days"`
	Message       string  `json:"message"`
}

type Record struct {
	RecordID  string `json:"record_id"`
	HabitID   string `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Notes     string `json:"notes"`
}

// RecordDetail adds the plain-text rendering of a record.
type RecordDetail struct {
	Record
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Conversions from domain types

func NewUser(u *tracker.User) User {
	return User{UserID: u.ID, Name: u.Name, Habits: u.Habits()}
}

func NewHabit(h *tracker.Habit) Habit {
	dates := h.CompletedDates()
	completed := make([]string, len(dates))
	for i, d := range dates {
		completed[i] = d.String()
	}
	return Habit{
		HabitID:        h.ID,
		Name:           h.Name,
		Frequency:      h.Frequency,
		StartDate:      h.Start.String(),
		EndDate:        h.End.String(),
		UserID:         h.UserID,
		CompletedDates: completed,
		CompletionRate: h.CompletionRate(),
	}
}

func NewRecord(r *tracker.Record) Record {
	return Record{
		RecordID:  r.ID,
		HabitID:   r.HabitID,
		HabitName: r.HabitName,
		Date:      r.Date.String(),
		Mood:      r.Mood,
		Notes:     r.Notes,
	}
}
