// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/tracker"
	"github.com/danielhkuo/habit-tracker/validation"
)

type RecordHandler struct {
	store    RecordStore
	mood     MoodClassifier
	validate *validation.Validator
}

func NewRecordHandler(s RecordStore, mood MoodClassifier, validate *validation.Validator) *RecordHandler {
	return &RecordHandler{store: s, mood: mood, validate: validate}
}

// CreateRecord handles POST /habits/{habit_name}/records
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}

	var req models.CreateRecordRequest
	if err := middleware.DecodeJSON(r, &req, h.validate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := tracker.NewRecord(habit, req.Date, req.Mood, req.Notes)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !habit.Contains(rec.Date) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("%s is outside the habit period %s to %s", rec.Date, habit.Start, habit.End))
		return
	}

	if req.ClassifyMood {
		h.mood.Apply(rec)
	}

	if err := h.store.CreateRecord(r.Context(), rec); err != nil {
		slog.Error("failed to insert record", "habit_id", habit.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create record")
		return
	}

	slog.Info("record created", "record_id", rec.ID, "habit_id", habit.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.NewRecord(rec))
}

// ListHabitRecords handles GET /habits/{habit_name}/records
func (h *RecordHandler) ListHabitRecords(w http.ResponseWriter, r *http.Request) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return
	}

	records, err := h.store.ListHabitRecords(r.Context(), habit.ID)
	if err != nil {
		slog.Error("failed to list records", "habit_id", habit.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toRecordResponses(records))
}

// ListRecords handles GET /records
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if err != nil {
		slog.Error("failed to list records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toRecordResponses(records))
}

// GetRecord handles GET /habits/{habit_name}/records/{record_id}
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.findRecord(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecordDetail{
		Record:  models.NewRecord(rec),
		Summary: rec.String(),
	})
}

// UpdateMood handles POST /habits/{habit_name}/records/{record_id}/mood
// With "classify" set the stored mood is the sentiment label of the text.
func (h *RecordHandler) UpdateMood(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.findRecord(w, r)
	if !ok {
		return
	}

	var req models.UpdateMoodRequest
	if err := middleware.DecodeJSON(r, &req, h.validate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec.UpdateMood(req.Mood)
	if req.Classify {
		h.mood.Apply(rec)
	}

	if !h.save(w, rec.ID, h.store.UpdateRecordMood(r.Context(), rec.ID, rec.Mood)) {
		return
	}
	slog.Info("record mood updated", "record_id", rec.ID)

	middleware.JSONResponse(w, http.StatusOK, models.NewRecord(rec))
}

// UpdateNotes handles POST /habits/{habit_name}/records/{record_id}/notes
func (h *RecordHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.findRecord(w, r)
	if !ok {
		return
	}

	var req models.UpdateNotesRequest
	if err := middleware.DecodeJSON(r, &req, h.validate); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rec.UpdateNotes(req.Notes)
	if !h.save(w, rec.ID, h.store.UpdateRecordNotes(r.Context(), rec.ID, rec.Notes)) {
		return
	}
	slog.Info("record notes updated", "record_id", rec.ID)

	middleware.JSONResponse(w, http.StatusOK, models.NewRecord(rec))
}

// findRecord loads {record_id} and checks it belongs to {habit_name}.
func (h *RecordHandler) findRecord(w http.ResponseWriter, r *http.Request) (*tracker.Record, bool) {
	habit, ok := findHabit(w, r, h.store)
	if !ok {
		return nil, false
	}

	recordID := r.PathValue("record_id")
	rec, err := h.store.GetRecord(r.Context(), recordID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && rec.HabitID != habit.ID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Record not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load record", "record_id", recordID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return rec, true
}

func (h *RecordHandler) save(w http.ResponseWriter, recordID string, err error) bool {
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Record not found")
		return false
	}
	if err != nil {
		slog.Error("failed to update record", "record_id", recordID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update record")
		return false
	}
	return true
}

func toRecordResponses(records []*tracker.Record) []models.Record {
	resp := make([]models.Record, 0, len(records))
	for _, rec := range records {
		resp = append(resp, models.NewRecord(rec))
	}
	return resp
}
