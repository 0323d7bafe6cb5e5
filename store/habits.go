// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/habit-tracker/tracker"
)

type habitRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Frequency string `db:"frequency"`
	StartDate string `db:"start_date"`
	EndDate   string `db:"end_date"`
	UserID    string `db:"user_id"`
}

type completionRow struct {
	HabitID string `db:"habit_id"`
	Date    string `db:"date"`
}

const habitColumns = "id, title, frequency, start_date, end_date, user_id"

// CreateHabit stores a new habit for h.UserID. The owner must exist and must
// not already have a habit with the same name.
func (s *Store) CreateHabit(ctx context.Context, h *tracker.Habit) error {
	return runInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := userExists(ctx, tx, h.UserID); err != nil {
			return err
		}

		var existing string
		err := tx.GetContext(ctx, &existing,
			tx.Rebind("SELECT id FROM habits WHERE user_id = ? AND title = ?"), h.UserID, h.Name)
		switch {
		case err == nil:
			return fmt.Errorf("habit %q: %w", h.Name, ErrAlreadyExists)
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("check habit: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO habits ("+habitColumns+", created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"),
			h.ID, h.Name, h.Frequency, h.Start.ISO(), h.End.ISO(), h.UserID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("insert habit: %w", err)
		}

		for _, d := range h.CompletedDates() {
			if err := insertCompletion(ctx, tx, h.ID, d); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteHabit removes the user's habit with the given title along with its
// completions and records. Returns false when the user has no such habit.
func (s *Store) DeleteHabit(ctx context.Context, userID, title string) (bool, error) {
	deleted := false
	err := runInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := userExists(ctx, tx, userID); err != nil {
			return err
		}

		var id string
		err := tx.GetContext(ctx, &id,
			tx.Rebind("SELECT id FROM habits WHERE user_id = ? AND title = ?"), userID, title)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find habit: %w", err)
		}

		for _, q := range []string{
			"DELETE FROM completions WHERE habit_id = ?",
			"DELETE FROM records WHERE habit_id = ?",
			"DELETE FROM habits WHERE id = ?",
		} {
			if _, err := tx.ExecContext(ctx, tx.Rebind(q), id); err != nil {
				return fmt.Errorf("delete habit: %w", err)
			}
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// FindHabit loads a habit by title with its completed dates. An empty userID
// matches any owner, in which case the oldest habit with that title wins.
func (s *Store) FindHabit(ctx context.Context, title, userID string) (*tracker.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits WHERE title = ?"
	args := []interface{}{title}
	if userID != "" {
		query += " AND user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at, id LIMIT 1"

	var row habitRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load habit: %w", err)
	}

	var dates []string
	err = s.db.SelectContext(ctx, &dates,
		s.db.Rebind("SELECT date FROM completions WHERE habit_id = ? ORDER BY date"), row.ID)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	return restoreHabit(row, dates)
}

func (s *Store) ListHabits(ctx context.Context) ([]*tracker.Habit, error) {
	var rows []habitRow
	err := s.db.SelectContext(ctx, &rows, "SELECT "+habitColumns+" FROM habits ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}

	var completions []completionRow
	if err := s.db.SelectContext(ctx, &completions, "SELECT habit_id, date FROM completions"); err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	byHabit := make(map[string][]string)
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Date)
	}

	habits := make([]*tracker.Habit, 0, len(rows))
	for _, r := range rows {
		h, err := restoreHabit(r, byHabit[r.ID])
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

// AddCompletion records d as completed for the habit. Recording the same
// day twice is a no-op.
func (s *Store) AddCompletion(ctx context.Context, habitID string, d tracker.Date) error {
	return insertCompletion(ctx, s.db, habitID, d)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Rebind(query string) string
}

func insertCompletion(ctx context.Context, e execer, habitID string, d tracker.Date) error {
	_, err := e.ExecContext(ctx,
		e.Rebind("INSERT INTO completions (habit_id, date) VALUES (?, ?) ON CONFLICT (habit_id, date) DO NOTHING"),
		habitID, d.ISO())
	if err != nil {
		return fmt.Errorf("insert completion: %w", err)
	}
	return nil
}

func restoreHabit(r habitRow, isoDates []string) (*tracker.Habit, error) {
	start, err := parseStoredDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseStoredDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	completed := make([]tracker.Date, 0, len(isoDates))
	for _, s := range isoDates {
		d, err := parseStoredDate(s)
		if err != nil {
			return nil, err
		}
		completed = append(completed, d)
	}
	return tracker.RestoreHabit(r.ID, r.Title, r.Frequency, start, end, r.UserID, completed), nil
}
