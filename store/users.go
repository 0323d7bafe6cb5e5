// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/habit-tracker/tracker"
)

type userRow struct {
	ID       string `db:"id"`
	Username string `db:"username"`
}

type ownedTitle struct {
	UserID string `db:"user_id"`
	Title  string `db:"title"`
}

func (s *Store) CreateUser(ctx context.Context, u *tracker.User) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind("INSERT INTO users (id, username) VALUES (?, ?)"),
		u.ID, u.Name)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser loads a user together with the titles of their habits.
func (s *Store) GetUser(ctx context.Context, id string) (*tracker.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row,
		s.db.Rebind("SELECT id, username FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var titles []string
	err = s.db.SelectContext(ctx, &titles,
		s.db.Rebind("SELECT title FROM habits WHERE user_id = ? ORDER BY title"), id)
	if err != nil {
		return nil, fmt.Errorf("load user habits: %w", err)
	}

	u := tracker.NewUser(row.Username, row.ID)
	for _, t := range titles {
		u.AddHabit(t)
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*tracker.User, error) {
	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT id, username FROM users ORDER BY username, id"); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	var owned []ownedTitle
	if err := s.db.SelectContext(ctx, &owned, "SELECT user_id, title FROM habits"); err != nil {
		return nil, fmt.Errorf("load habit titles: %w", err)
	}

	users := make([]*tracker.User, 0, len(rows))
	byID := make(map[string]*tracker.User, len(rows))
	for _, r := range rows {
		u := tracker.NewUser(r.Username, r.ID)
		users = append(users, u)
		byID[r.ID] = u
	}
	for _, o := range owned {
		if u, ok := byID[o.UserID]; ok {
			u.AddHabit(o.Title)
		}
	}
	return users, nil
}

// DeleteUser removes a user with all their habits, completions and records.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return runInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := userExists(ctx, tx, id); err != nil {
			return err
		}

		stmts := []string{
			"DELETE FROM completions WHERE habit_id IN (SELECT id FROM habits WHERE user_id = ?)",
			"DELETE FROM records WHERE habit_id IN (SELECT id FROM habits WHERE user_id = ?)",
			"DELETE FROM habits WHERE user_id = ?",
			"DELETE FROM users WHERE id = ?",
		}
		for _, q := range stmts {
			if _, err := tx.ExecContext(ctx, tx.Rebind(q), id); err != nil {
				return fmt.Errorf("delete user: %w", err)
			}
		}
		return nil
	})
}

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func userExists(ctx context.Context, q queryer, id string) error {
	var found string
	err := q.GetContext(ctx, &found, q.Rebind("SELECT id FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	return nil
}
