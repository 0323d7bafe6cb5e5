// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/mood"
	"github.com/danielhkuo/habit-tracker/motivation"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/testutil"
	"github.com/danielhkuo/habit-tracker/validation"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	quotes, err := motivation.New([]string{"Keep going."})
	if err != nil {
		t.Fatalf("Failed to create quotes: %v", err)
	}

	validate, err := validation.New()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	return NewRouter(Deps{
		Store:    store.New(db),
		Quotes:   quotes,
		Mood:     mood.New(mood.English),
		Validate: validate,
	})
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp models.HomeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Quote != "Keep going." {
		t.Errorf("Expected the only quote, got '%s'", resp.Quote)
	}
	if resp.Message == "" {
		t.Error("Expected a greeting")
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	// Note: Some routes return 404 when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		// Health, root and quotes
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/quotes/next"},

		// Users
		{"POST", "/users"},
		{"GET", "/users"},
		{"GET", "/users/test-id"},
		{"DELETE", "/users/test-id"},
		{"POST", "/users/test-id/habits"},
		{"DELETE", "/users/test-id/habits/Running"},

		// Habits
		{"GET", "/habits"},
		{"GET", "/habits/Running"},
		{"POST", "/habits/Running/mark/01-11-2025"},
		{"GET", "/habits/Running/check/01-11-2025"},
		{"GET", "/habits/Running/rate"},
		{"GET", "/habits/Running/chart"},

		// Records
		{"POST", "/habits/Running/records"},
		{"GET", "/habits/Running/records"},
		{"GET", "/habits/Running/records/test-id"},
		{"POST", "/habits/Running/records/test-id/mood"},
		{"POST", "/habits/Running/records/test-id/notes"},
		{"GET", "/records"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 400 and 404 are valid responses depending on handler logic
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"PUT to habit", "PUT", "/habits/Running", http.StatusMethodNotAllowed},
		{"GET to mark", "GET", "/habits/Running/mark/01-11-2025", http.StatusMethodNotAllowed},
		{"DELETE to records", "DELETE", "/records", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux := newTestRouter(t)

	// Create a user, a habit and mark it through the router
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/users", models.CreateUserRequest{Name: "Alice"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var user models.CreateUserResponse
	testutil.AssertJSON(t, w, &user)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/users/"+user.UserID+"/habits", models.CreateHabitRequest{
		Name:      "Morning Run",
		StartDate: "01-11-2025",
		EndDate:   "30-11-2025",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/habits/Morning%20Run/mark/05-11-2025?user_id="+user.UserID, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var mark models.MarkResponse
	testutil.AssertJSON(t, w, &mark)
	if mark.Habit != "Morning Run" || mark.Date != "05-11-2025" {
		t.Errorf("Path parameters not extracted: %+v", mark)
	}
}
