// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	mock_handlers "github.com/danielhkuo/habit-tracker/mocks/handlers"
	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/mood"
	"github.com/danielhkuo/habit-tracker/testutil"
	"github.com/danielhkuo/habit-tracker/tracker"
)

func recordRequest(method, habitName, recordID string, body interface{}) *http.Request {
	req := habitRequest(method, "/habits/"+habitName+"/records/"+recordID, habitName, body)
	req.SetPathValue("record_id", recordID)
	return req
}

func TestCreateRecord(t *testing.T) {
	db, st, validate := setupTest(t)
	ctrl := gomock.NewController(t)
	handler := NewRecordHandler(st, mock_handlers.NewMockMoodClassifier(ctrl), validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")

	tests := []struct {
		name       string
		habit      string
		body       interface{}
		wantStatus int
	}{
		{"valid record", "Running", models.CreateRecordRequest{Date: "05-11-2025", Mood: "tired", Notes: "5k"}, http.StatusCreated},
		{"outside period", "Running", models.CreateRecordRequest{Date: "05-12-2025"}, http.StatusUnprocessableEntity},
		{"missing date", "Running", models.CreateRecordRequest{Mood: "fine"}, http.StatusBadRequest},
		{"malformed date", "Running", models.CreateRecordRequest{Date: "2025/11/05"}, http.StatusBadRequest},
		{"bad json", "Running", "not an object", http.StatusBadRequest},
		{"unknown habit", "Swimming", models.CreateRecordRequest{Date: "05-11-2025"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := habitRequest("POST", "/habits/"+tt.habit+"/records", tt.habit, tt.body)
			w := httptest.NewRecorder()
			handler.CreateRecord(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var resp models.Record
			testutil.AssertJSON(t, w, &resp)
			if resp.RecordID == "" || resp.HabitName != "Running" {
				t.Errorf("Unexpected record: %+v", resp)
			}
			if resp.Date != "05-11-2025" || resp.Mood != "tired" || resp.Notes != "5k" {
				t.Errorf("Expected fields echoed back, got %+v", resp)
			}
		})
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM records"); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Expected 1 stored record, got %d", n)
	}
}

func TestCreateRecord_ClassifiesMood(t *testing.T) {
	db, st, validate := setupTest(t)
	ctrl := gomock.NewController(t)
	classifier := mock_handlers.NewMockMoodClassifier(ctrl)
	handler := NewRecordHandler(st, classifier, validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")

	classifier.EXPECT().
		Apply(gomock.Any()).
		DoAndReturn(func(rec *tracker.Record) string {
			if rec.Mood != "I feel wonderful" {
				t.Errorf("Expected raw mood text, got %q", rec.Mood)
			}
			rec.UpdateMood("good")
			return "good"
		})

	body := models.CreateRecordRequest{Date: "05-11-2025", Mood: "I feel wonderful", ClassifyMood: true}
	w := httptest.NewRecorder()
	handler.CreateRecord(w, habitRequest("POST", "/habits/Running/records", "Running", body))

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.Record
	testutil.AssertJSON(t, w, &resp)
	if resp.Mood != "good" {
		t.Errorf("Expected classified mood, got %q", resp.Mood)
	}

	var stored string
	if err := db.Get(&stored, "SELECT mood FROM records WHERE id = ?", resp.RecordID); err != nil {
		t.Fatal(err)
	}
	if stored != "good" {
		t.Errorf("Expected stored mood good, got %q", stored)
	}
}

func TestGetRecord(t *testing.T) {
	db, st, validate := setupTest(t)
	handler := NewRecordHandler(st, mood.New(mood.English), validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	running := testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")
	reading := testutil.CreateTestHabit(t, db, userID, "Reading", "01-11-2025", "30-11-2025")
	recID := testutil.CreateTestRecord(t, db, running, "03-11-2025", "happy", "easy pace")
	otherID := testutil.CreateTestRecord(t, db, reading, "03-11-2025", "", "")

	w := httptest.NewRecorder()
	handler.GetRecord(w, recordRequest("GET", "Running", recID, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.RecordDetail
	testutil.AssertJSON(t, w, &resp)

	want := "ID: " + recID + "\nHabit Name: Running\nDate: 03-11-2025\nMood: happy\nNotes: easy pace"
	if resp.Summary != want {
		t.Errorf("Unexpected summary:\n%s\nwant:\n%s", resp.Summary, want)
	}
	if resp.HabitID != running {
		t.Errorf("Expected habit %s, got %s", running, resp.HabitID)
	}

	tests := []struct {
		name     string
		habit    string
		recordID string
	}{
		{"record of another habit", "Running", otherID},
		{"unknown record", "Running", "missing"},
		{"unknown habit", "Swimming", recID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.GetRecord(w, recordRequest("GET", tt.habit, tt.recordID, nil))
			testutil.AssertStatus(t, w, http.StatusNotFound)
		})
	}
}

func TestUpdateMood(t *testing.T) {
	db, st, validate := setupTest(t)
	handler := NewRecordHandler(st, mood.New(mood.English), validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	habitID := testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")
	recID := testutil.CreateTestRecord(t, db, habitID, "03-11-2025", "", "")

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantMood   string
	}{
		{"plain mood", models.UpdateMoodRequest{Mood: "sleepy"}, http.StatusOK, "sleepy"},
		{"classified positive", models.UpdateMoodRequest{Mood: "good", Classify: true}, http.StatusOK, "good"},
		{"classified negative", models.UpdateMoodRequest{Mood: "bad", Classify: true}, http.StatusOK, "bad"},
		{"classified neutral", models.UpdateMoodRequest{Mood: "table", Classify: true}, http.StatusOK, "neutral"},
		{"empty mood clears", models.UpdateMoodRequest{}, http.StatusOK, ""},
		{"bad json", "not an object", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.UpdateMood(w, recordRequest("POST", "Running", recID, tt.body))

			testutil.AssertStatus(t, w, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp models.Record
			testutil.AssertJSON(t, w, &resp)
			if resp.Mood != tt.wantMood {
				t.Errorf("Expected mood %q, got %q", tt.wantMood, resp.Mood)
			}

			var stored string
			if err := db.Get(&stored, "SELECT mood FROM records WHERE id = ?", recID); err != nil {
				t.Fatal(err)
			}
			if stored != tt.wantMood {
				t.Errorf("Expected stored mood %q, got %q", tt.wantMood, stored)
			}
		})
	}
}

func TestUpdateNotes(t *testing.T) {
	db, st, validate := setupTest(t)
	handler := NewRecordHandler(st, mood.New(mood.English), validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	habitID := testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")
	recID := testutil.CreateTestRecord(t, db, habitID, "03-11-2025", "ok", "old")

	w := httptest.NewRecorder()
	handler.UpdateNotes(w, recordRequest("POST", "Running", recID, models.UpdateNotesRequest{Notes: "new notes"}))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.Record
	testutil.AssertJSON(t, w, &resp)
	if resp.Notes != "new notes" || resp.Mood != "ok" {
		t.Errorf("Unexpected record after update: %+v", resp)
	}

	// clearing notes is allowed
	w = httptest.NewRecorder()
	handler.UpdateNotes(w, recordRequest("POST", "Running", recID, models.UpdateNotesRequest{}))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestListRecords(t *testing.T) {
	db, st, validate := setupTest(t)
	handler := NewRecordHandler(st, mood.New(mood.English), validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	running := testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")
	reading := testutil.CreateTestHabit(t, db, userID, "Reading", "01-11-2025", "30-11-2025")
	testutil.CreateTestRecord(t, db, running, "04-11-2025", "", "")
	testutil.CreateTestRecord(t, db, running, "02-11-2025", "", "")
	testutil.CreateTestRecord(t, db, reading, "03-11-2025", "", "")

	w := httptest.NewRecorder()
	handler.ListRecords(w, httptest.NewRequest("GET", "/records", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var all []models.Record
	testutil.AssertJSON(t, w, &all)
	if len(all) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(all))
	}

	w = httptest.NewRecorder()
	handler.ListHabitRecords(w, habitRequest("GET", "/habits/Running/records", "Running", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var forHabit []models.Record
	testutil.AssertJSON(t, w, &forHabit)

	var dates []string
	for _, rec := range forHabit {
		dates = append(dates, rec.Date)
	}
	if got := strings.Join(dates, ","); got != "02-11-2025,04-11-2025" {
		t.Errorf("Expected records in date order, got %s", got)
	}
}
