package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/habit-tracker/cliparse"
	"github.com/danielhkuo/habit-tracker/db"
	"github.com/danielhkuo/habit-tracker/logging"
	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/mood"
	"github.com/danielhkuo/habit-tracker/motivation"
	"github.com/danielhkuo/habit-tracker/router"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/validation"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx := context.Background()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Apply migrations
	if err := db.Migrate(ctx, dbConn, cfg.DatabaseType); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Motivational quotes
	var quotes *motivation.Rotator
	if cfg.QuotesFile != "" {
		quotes, err = motivation.Load(cfg.QuotesFile)
	} else {
		quotes, err = motivation.Default()
	}
	if err != nil {
		slog.Error("quotes unavailable", "file", cfg.QuotesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Quotes loaded", "count", quotes.Len())

	locale, err := mood.LocaleByCode(cfg.MoodLocale)
	if err != nil {
		slog.Error("unsupported mood locale", "error", err)
		os.Exit(1)
	}

	validate, err := validation.New()
	if err != nil {
		slog.Error("validator setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(router.Deps{
		Store:    store.New(dbConn),
		Quotes:   quotes,
		Mood:     mood.New(locale),
		Validate: validate,
	})

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
