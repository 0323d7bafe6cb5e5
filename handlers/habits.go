// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/report"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/tracker"
	"github.com/danielhkuo/habit-tracker/validation"
)

type HabitHandler struct {
	store    HabitStore
	validate *validation.Validator
}

func NewHabitHandler(s HabitStore, validate *validation.Validator) *HabitHandler {
	return &HabitHandler{store: s, validate: validate}
}

// CreateHabit handles POST /users/{user_id}/habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	var req models.CreateHabitRequest
	if err := middleware.DecodeJSON(r, &req, h.validate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	habit, err := tracker.NewHabit(req.Name, req.Frequency, req.StartDate, req.EndDate)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	habit.UserID = userID

	err = h.store.CreateHabit(r.Context(), habit)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, store.ErrAlreadyExists):
		middleware.ErrorResponse(w, http.StatusConflict, fmt.Sprintf("Habit '%s' already exists for this user", req.Name))
		return
	case err != nil:
		slog.Error("failed to insert habit", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create habit")
		return
	}

	slog.Info("habit created", "habit_id", habit.ID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.NewHabit(habit))
}

// DeleteHabit handles DELETE /users/{user_id}/habits/{habit_name}
// Deleting a habit the user does not have succeeds.
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	name := r.PathValue("habit_name")

	deleted, err := h.store.DeleteHabit(r.Context(), userID, name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete habit", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete habit")
		return
	}

	msg := fmt.Sprintf("Habit '%s' removed", name)
	if deleted {
		slog.Info("habit deleted", "habit", name, "user_id", userID)
	} else {
		msg = fmt.Sprintf("User has no habit '%s'", name)
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msg})
}

// ListHabits handles GET /habits
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.store.ListHabits(r.Context())
	if err != nil {
		slog.Error("failed to list habits", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := make([]models.Habit, 0, len(habits))
	for _, habit := range habits {
		resp = append(resp, models.NewHabit(habit))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetHabit handles GET /habits/{habit_name}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.NewHabit(habit))
}

// MarkCompleted handles POST /habits/{habit_name}/mark/{day}
func (h *HabitHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}

	day := r.PathValue("day")
	outcome, err := habit.MarkCompleted(day)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// already validated by MarkCompleted
	d, _ := tracker.ParseDate(day)
	resp := models.MarkResponse{Habit: habit.Name, Date: d.String(), Outcome: outcome.String()}

	switch outcome {
	case tracker.MarkOutOfRange:
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("%s is outside the habit period %s to %s", d, habit.Start, habit.End))
	case tracker.MarkAlreadyCompleted:
		resp.Message = fmt.Sprintf("Habit '%s' was already marked as completed on %s", habit.Name, d)
		middleware.JSONResponse(w, http.StatusOK, resp)
	default:
		if err := h.store.AddCompletion(r.Context(), habit.ID, d); err != nil {
			slog.Error("failed to insert completion", "habit_id", habit.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to mark habit")
			return
		}
		slog.Info("habit marked", "habit_id", habit.ID, "day", d.String())

		resp.Message = fmt.Sprintf("Habit '%s' marked as completed on %s", habit.Name, d)
		middleware.JSONResponse(w, http.StatusCreated, resp)
	}
}

// CheckCompleted handles GET /habits/{habit_name}/check/{day}
func (h *HabitHandler) CheckCompleted(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}

	d, err := tracker.ParseDate(r.PathValue("day"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckResponse{
		Habit:     habit.Name,
		Date:      d.String(),
		Completed: habit.IsCompletedOn(d),
	})
}

// CompletionRate handles GET /habits/{habit_name}/rate
func (h *HabitHandler) CompletionRate(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}

	rate := habit.CompletionRate()
	completed := habit.CompletedCount()
	total := max(habit.TotalPeriod(), 0)

	middleware.JSONResponse(w, http.StatusOK, models.RateResponse{
		Habit:         habit.Name,
		Rate:          rate,
		CompletedDays: completed,
		TotalDays:     total,
		Message: fmt.Sprintf("Habit '%s' completion rate is %s%% (%s of %s days)",
			habit.Name,
			humanize.FormatFloat("#,###.##", rate),
			humanize.Comma(int64(completed)),
			humanize.Comma(int64(total))),
	})
}

// CompletionChart handles GET /habits/{habit_name}/chart
func (h *HabitHandler) CompletionChart(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.CompletionChart(&buf, habit); err != nil {
		slog.Error("failed to render chart", "habit_id", habit.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="completion.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write chart", "error", err)
	}
}
