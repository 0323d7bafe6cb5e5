// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/habit-tracker/handlers"
	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/validation"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Store    *store.Store
	Quotes   handlers.QuoteSource
	Mood     handlers.MoodClassifier
	Validate *validation.Validator
}

func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(deps.Quotes)
	userHandler := handlers.NewUserHandler(deps.Store, deps.Validate)
	habitHandler := handlers.NewHabitHandler(deps.Store, deps.Validate)
	recordHandler := handlers.NewRecordHandler(deps.Store, deps.Mood, deps.Validate)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Greeting and quotes
	mux.HandleFunc("GET /{$}", middleware.WithLogging(homeHandler.Home))
	mux.HandleFunc("GET /quotes/next", middleware.WithLogging(homeHandler.NextQuote))

	// Users
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("GET /users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("GET /users/{user_id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("DELETE /users/{user_id}", middleware.WithLogging(userHandler.DeleteUser))
	mux.HandleFunc("POST /users/{user_id}/habits", middleware.WithLogging(habitHandler.CreateHabit))
	mux.HandleFunc("DELETE /users/{user_id}/habits/{habit_name}", middleware.WithLogging(habitHandler.DeleteHabit))

	// Habits (by name, optional ?user_id=)
	mux.HandleFunc("GET /habits", middleware.WithLogging(habitHandler.ListHabits))
	mux.HandleFunc("GET /habits/{habit_name}", middleware.WithLogging(habitHandler.GetHabit))
	mux.HandleFunc("POST /habits/{habit_name}/mark/{day}", middleware.WithLogging(habitHandler.MarkCompleted))
	mux.HandleFunc("GET /habits/{habit_name}/check/{day}", middleware.WithLogging(habitHandler.CheckCompleted))
	mux.HandleFunc("GET /habits/{habit_name}/rate", middleware.WithLogging(habitHandler.CompletionRate))
	mux.HandleFunc("GET /habits/{habit_name}/chart", middleware.WithLogging(habitHandler.CompletionChart))

	// Records
	mux.HandleFunc("POST /habits/{habit_name}/records", middleware.WithLogging(recordHandler.CreateRecord))
	mux.HandleFunc("GET /habits/{habit_name}/records", middleware.WithLogging(recordHandler.ListHabitRecords))
	mux.HandleFunc("GET /habits/{habit_name}/records/{record_id}", middleware.WithLogging(recordHandler.GetRecord))
	mux.HandleFunc("POST /habits/{habit_name}/records/{record_id}/mood", middleware.WithLogging(recordHandler.UpdateMood))
	mux.HandleFunc("POST /habits/{habit_name}/records/{record_id}/notes", middleware.WithLogging(recordHandler.UpdateNotes))
	mux.HandleFunc("GET /records", middleware.WithLogging(recordHandler.ListRecords))

	return mux
}
