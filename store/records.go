// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/habit-tracker/tracker"
)

type recordRow struct {
	ID         string `db:"id"`
	Date       string `db:"date"`
	Mood       string `db:"mood"`
	Notes      string `db:"notes"`
	HabitID    string `db:"habit_id"`
	HabitTitle string `db:"habit_title"`
}

const recordSelect = `SELECT r.id, r.date, r.mood, r.notes, r.habit_id, h.title AS habit_title
FROM records r JOIN habits h ON h.id = r.habit_id`

func (s *Store) CreateRecord(ctx context.Context, r *tracker.Record) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind("INSERT INTO records (id, date, mood, notes, habit_id) VALUES (?, ?, ?, ?, ?)"),
		r.ID, r.Date.ISO(), r.Mood, r.Notes, r.HabitID)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (s *Store) GetRecord(ctx context.Context, id string) (*tracker.Record, error) {
	var row recordRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(recordSelect+" WHERE r.id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	return row.toRecord()
}

func (s *Store) ListRecords(ctx context.Context) ([]*tracker.Record, error) {
	var rows []recordRow
	if err := s.db.SelectContext(ctx, &rows, recordSelect+" ORDER BY r.date, r.id"); err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return toRecords(rows)
}

func (s *Store) ListHabitRecords(ctx context.Context, habitID string) ([]*tracker.Record, error) {
	var rows []recordRow
	err := s.db.SelectContext(ctx, &rows,
		s.db.Rebind(recordSelect+" WHERE r.habit_id = ? ORDER BY r.date, r.id"), habitID)
	if err != nil {
		return nil, fmt.Errorf("load habit records: %w", err)
	}
	return toRecords(rows)
}

func (s *Store) UpdateRecordMood(ctx context.Context, id, mood string) error {
	return s.updateRecord(ctx, "UPDATE records SET mood = ? WHERE id = ?", mood, id)
}

func (s *Store) UpdateRecordNotes(ctx context.Context, id, notes string) error {
	return s.updateRecord(ctx, "UPDATE records SET notes = ? WHERE id = ?", notes, id)
}

func (s *Store) updateRecord(ctx context.Context, query, value, id string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), value, id)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r recordRow) toRecord() (*tracker.Record, error) {
	d, err := parseStoredDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &tracker.Record{
		ID:        r.ID,
		HabitID:   r.HabitID,
		HabitName: r.HabitTitle,
		Date:      d,
		Mood:      r.Mood,
		Notes:     r.Notes,
	}, nil
}

func toRecords(rows []recordRow) ([]*tracker.Record, error) {
	records := make([]*tracker.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
