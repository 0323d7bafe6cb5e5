// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/mood"
	"github.com/danielhkuo/habit-tracker/testutil"
)

// TestConcurrentMarkSameDay verifies that simultaneous marks of the same day
// leave exactly one completion behind
func TestConcurrentMarkSameDay(t *testing.T) {
	db, st, validate := setupTest(t)
	handler := NewHabitHandler(st, validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")

	numRequests := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := habitRequest("POST", "/habits/Running/mark/05-11-2025", "Running", nil)
			req.SetPathValue("day", "05-11-2025")
			w := httptest.NewRecorder()
			handler.MarkCompleted(w, req)

			if w.Code == http.StatusCreated || w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numRequests {
		t.Errorf("Expected %d successful marks, got %d", numRequests, successCount.Load())
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM completions"); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Expected exactly 1 completion, got %d", n)
	}
}

// TestConcurrentRecordCreation checks that parallel record writes on
// different days are all stored
func TestConcurrentRecordCreation(t *testing.T) {
	db, st, validate := setupTest(t)
	handler := NewRecordHandler(st, mood.New(mood.English), validate)

	userID := testutil.CreateTestUser(t, db, "Alice")
	testutil.CreateTestHabit(t, db, userID, "Running", "01-11-2025", "30-11-2025")

	numRecords := 10
	var wg sync.WaitGroup
	var failed atomic.Int32

	for i := 0; i < numRecords; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()

			body := models.CreateRecordRequest{Date: fmt.Sprintf("%02d-11-2025", day), Mood: "good", ClassifyMood: true}
			w := httptest.NewRecorder()
			handler.CreateRecord(w, habitRequest("POST", "/habits/Running/records", "Running", body))

			if w.Code != http.StatusCreated {
				failed.Add(1)
			}
		}(i + 1)
	}

	wg.Wait()

	if failed.Load() != 0 {
		t.Errorf("%d record creations failed", failed.Load())
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM records"); err != nil {
		t.Fatal(err)
	}
	if n != numRecords {
		t.Errorf("Expected %d records, got %d", numRecords, n)
	}
}
