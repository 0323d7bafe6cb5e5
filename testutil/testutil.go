// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/habit-tracker/db"
	"github.com/danielhkuo/habit-tracker/idgen"
	"github.com/danielhkuo/habit-tracker/tracker"
)

// SetupTestDB opens a fresh in-memory sqlite database with all migrations applied.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(ctx, conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, conn *sqlx.DB, name string) string {
	t.Helper()

	id := idgen.New()
	_, err := conn.Exec(conn.Rebind("INSERT INTO users (id, username) VALUES (?, ?)"), id, name)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// CreateTestHabit inserts a habit for userID; start and end are DD-MM-YYYY.
// Each call is stamped later than the previous one, so creation order is
// the lookup order for habits sharing a title.
func CreateTestHabit(t *testing.T, conn *sqlx.DB, userID, title, start, end string) string {
	t.Helper()

	id := idgen.New()
	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO habits (id, title, frequency, start_date, end_date, user_id, created_at)
		VALUES (?, ?, 'daily', ?, ?, ?, ?)
	`), id, title, tracker.MustParseDate(start).ISO(), tracker.MustParseDate(end).ISO(), userID, nextStamp())
	if err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}
	return id
}

// MarkTestCompletion records day (DD-MM-YYYY) as completed for a habit
func MarkTestCompletion(t *testing.T, conn *sqlx.DB, habitID, day string) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind("INSERT INTO completions (habit_id, date) VALUES (?, ?)"),
		habitID, tracker.MustParseDate(day).ISO())
	if err != nil {
		t.Fatalf("Failed to mark test completion: %v", err)
	}
}

// CreateTestRecord inserts a record for a habit and returns its ID
func CreateTestRecord(t *testing.T, conn *sqlx.DB, habitID, day, mood, notes string) string {
	t.Helper()

	id := idgen.New()
	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO records (id, date, mood, notes, habit_id)
		VALUES (?, ?, ?, ?, ?)
	`), id, tracker.MustParseDate(day).ISO(), mood, notes, habitID)
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}
	return id
}

var stamp = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func nextStamp() time.Time {
	stamp = stamp.Add(time.Second)
	return stamp
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
