// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"fmt"

	"github.com/danielhkuo/habit-tracker/idgen"
)

// Record is a dated mood/notes annotation on a habit. It does not check
// that Date falls inside the habit's range.
type Record struct {
	ID        string
	HabitID   string
	HabitName string
	Date      Date
	Mood      string
	Notes     string
}

func NewRecord(habit *Habit, day, mood, notes string) (*Record, error) {
	d, err := ParseDate(day)
	if err != nil {
		return nil, err
	}
	return &Record{
		ID:        idgen.New(),
		HabitID:   habit.ID,
		HabitName: habit.Name,
		Date:      d,
		Mood:      mood,
		Notes:     notes,
	}, nil
}

func (r *Record) UpdateMood(mood string) {
	r.Mood = mood
}

func (r *Record) UpdateNotes(notes string) {
	r.Notes = notes
}

// String renders the record for display.
func (r *Record) String() string {
	return fmt.Sprintf("ID: %s\nHabit Name: %s\nDate: %s\nMood: %s\nNotes: %s",
		r.ID, r.HabitName, r.Date, r.Mood, r.Notes)
}
