// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"math"
	"sort"

	"github.com/danielhkuo/habit-tracker/idgen"
)

// MarkOutcome reports what MarkCompleted did with a date.
type MarkOutcome int

const (
	// MarkUnknown accompanies a parse error; nothing was marked.
	MarkUnknown MarkOutcome = iota
	MarkAccepted
	MarkAlreadyCompleted
	MarkOutOfRange
)

func (o MarkOutcome) String() string {
	switch o {
	case MarkAccepted:
		return "accepted"
	case MarkAlreadyCompleted:
		return "already_completed"
	case MarkOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Habit is a tracked behavior over an inclusive date range.
// Start <= End is not checked; a reversed range yields a non-positive period.
type Habit struct {
	ID        string
	Name      string
	Frequency string
	Start     Date
	End       Date
	UserID    string

	completed map[Date]struct{}
}

// NewHabit parses both DD-MM-YYYY dates and returns a habit with a fresh id.
func NewHabit(name, frequency, start, end string) (*Habit, error) {
	s, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	return &Habit{
		ID:        idgen.New(),
		Name:      name,
		Frequency: frequency,
		Start:     s,
		End:       e,
		completed: make(map[Date]struct{}),
	}, nil
}

// RestoreHabit rebuilds a persisted habit together with its completion set.
func RestoreHabit(id, name, frequency string, start, end Date, userID string, completed []Date) *Habit {
	h := &Habit{
		ID:        id,
		Name:      name,
		Frequency: frequency,
		Start:     start,
		End:       end,
		UserID:    userID,
		completed: make(map[Date]struct{}, len(completed)),
	}
	for _, d := range completed {
		h.completed[d] = struct{}{}
	}
	return h
}

// Contains reports whether d lies in [Start, End].
func (h *Habit) Contains(d Date) bool {
	return !d.Before(h.Start) && !d.After(h.End)
}

// MarkCompleted parses day and records it as completed.
func (h *Habit) MarkCompleted(day string) (MarkOutcome, error) {
	d, err := ParseDate(day)
	if err != nil {
		return MarkUnknown, err
	}
	return h.MarkDate(d), nil
}

// MarkDate records d as completed. Dates outside the range and dates
// already present leave the set unchanged.
func (h *Habit) MarkDate(d Date) MarkOutcome {
	if !h.Contains(d) {
		return MarkOutOfRange
	}
	if h.completed == nil {
		h.completed = make(map[Date]struct{})
	}
	if _, ok := h.completed[d]; ok {
		return MarkAlreadyCompleted
	}
	h.completed[d] = struct{}{}
	return MarkAccepted
}

func (h *Habit) IsCompleted(day string) (bool, error) {
	d, err := ParseDate(day)
	if err != nil {
		return false, err
	}
	return h.IsCompletedOn(d), nil
}

func (h *Habit) IsCompletedOn(d Date) bool {
	_, ok := h.completed[d]
	return ok
}

// CompletedDates returns the completed dates in ascending order.
func (h *Habit) CompletedDates() []Date {
	dates := make([]Date, 0, len(h.completed))
	for d := range h.completed {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (h *Habit) CompletedCount() int {
	return len(h.completed)
}

// TotalPeriod is the inclusive day count of the range. It may be zero or
// negative when End precedes Start.
func (h *Habit) TotalPeriod() int {
	return h.Start.DaysUntil(h.End) + 1
}

// CompletionRate is the completed share of the period in percent, rounded
// to two decimals. A non-positive period yields 0.
func (h *Habit) CompletionRate() float64 {
	total := h.TotalPeriod()
	if total <= 0 {
		return 0
	}
	rate := float64(len(h.completed)) / float64(total) * 100
	return math.Round(rate*100) / 100
}
