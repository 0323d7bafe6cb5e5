// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/habit-tracker/tracker"
)

func habitWith(t *testing.T, name string, days ...string) *tracker.Habit {
	t.Helper()
	h, err := tracker.NewHabit(name, "daily", "01-11-2025", "30-11-2025")
	require.NoError(t, err)
	for _, d := range days {
		_, err := h.MarkCompleted(d)
		require.NoError(t, err)
	}
	return h
}

func TestCompletionChart(t *testing.T) {
	tests := []struct {
		name  string
		habit *tracker.Habit
	}{
		{name: "partial", habit: habitWith(t, "Running", "01-11-2025", "02-11-2025")},
		{name: "none completed", habit: habitWith(t, "Reading")},
		{name: "non latin name", habit: habitWith(t, "Бег", "05-11-2025")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, CompletionChart(&buf, tt.habit))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "missing PDF header")
			assert.Contains(t, buf.String(), "%%EOF")
		})
	}
}

func TestCompletionChart_FullyCompleted(t *testing.T) {
	h, err := tracker.NewHabit("Stretch", "daily", "01-11-2025", "02-11-2025")
	require.NoError(t, err)
	h.MarkDate(tracker.MustParseDate("01-11-2025"))
	h.MarkDate(tracker.MustParseDate("02-11-2025"))
	require.Equal(t, 100.0, h.CompletionRate())

	var buf bytes.Buffer
	require.NoError(t, CompletionChart(&buf, h))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWedge(t *testing.T) {
	points := wedge(90, 90)

	require.Len(t, points, 92)
	assert.Equal(t, centerX, points[0].X)
	assert.Equal(t, centerY, points[0].Y)

	// first arc point is straight up, last is due left
	first, last := points[1], points[len(points)-1]
	assert.InDelta(t, centerX, first.X, 1e-9)
	assert.InDelta(t, centerY-radius, first.Y, 1e-9)
	assert.InDelta(t, centerX-radius, last.X, 1e-9)
	assert.InDelta(t, centerY, last.Y, 1e-9)

	for _, p := range points[1:] {
		d := math.Hypot(p.X-centerX, p.Y-centerY)
		assert.InDelta(t, radius, d, 1e-9)
	}
}

func TestWedge_TinySlice(t *testing.T) {
	points := wedge(0, 0.01)
	assert.Len(t, points, 3)
}
