// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/danielhkuo/habit-tracker/tracker"
)

type rgb struct{ r, g, b int }

var (
	completedColor = rgb{173, 216, 230} // light blue
	missedColor    = rgb{240, 128, 128} // light coral
)

const (
	centerX = 105.0
	centerY = 120.0
	radius  = 60.0
	// segments per full circle when approximating arcs
	arcSteps = 360
)

type slice struct {
	label   string
	percent float64
	color   rgb
}

// CompletionChart writes a one-page PDF with a pie chart of completed
// versus missed days for h.
//
// The core PDF fonts cover Windows-1252 only; characters outside it (for
// example Cyrillic habit names) are replaced.
func CompletionChart(w io.Writer, h *tracker.Habit) error {
	rate := h.CompletionRate()
	slices := []slice{
		{label: "Completed days", percent: rate, color: completedColor},
		{label: "Missed days", percent: 100 - rate, color: missedColor},
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetTitle("Habit completion", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Habit completion rate (%s)", h.Name)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s to %s, %d of %d days",
		h.Start, h.End, h.CompletedCount(), max(h.TotalPeriod(), 0)), "", 1, "C", false, 0, "")

	drawPie(pdf, slices)
	drawLegend(pdf, slices, centerY+radius+15)

	return pdf.Output(w)
}

// drawPie starts at 12 o'clock and runs counter-clockwise.
func drawPie(pdf *fpdf.Fpdf, slices []slice) {
	start := 90.0
	for _, s := range slices {
		if s.percent <= 0 {
			continue
		}
		pdf.SetFillColor(s.color.r, s.color.g, s.color.b)
		if s.percent >= 100 {
			pdf.Circle(centerX, centerY, radius, "F")
			label(pdf, 0, 0, s.percent)
			return
		}

		sweep := 360 * s.percent / 100
		pdf.Polygon(wedge(start, sweep), "F")
		mid := (start + sweep/2) * math.Pi / 180
		label(pdf, 0.6*radius*math.Cos(mid), -0.6*radius*math.Sin(mid), s.percent)
		start += sweep
	}
}

// wedge returns the outline of a pie slice from angle start spanning sweep
// degrees. PDF y grows downward, hence the negated sine.
func wedge(start, sweep float64) []fpdf.PointType {
	steps := int(math.Ceil(sweep / 360 * arcSteps))
	if steps < 1 {
		steps = 1
	}
	points := make([]fpdf.PointType, 0, steps+2)
	points = append(points, fpdf.PointType{X: centerX, Y: centerY})
	for i := 0; i <= steps; i++ {
		a := (start + sweep*float64(i)/float64(steps)) * math.Pi / 180
		points = append(points, fpdf.PointType{
			X: centerX + radius*math.Cos(a),
			Y: centerY - radius*math.Sin(a),
		})
	}
	return points
}

func label(pdf *fpdf.Fpdf, dx, dy, percent float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(centerX+dx-15, centerY+dy-4)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.1f%%", percent), "", 0, "C", false, 0, "")
}

func drawLegend(pdf *fpdf.Fpdf, slices []slice, y float64) {
	pdf.SetFont("Helvetica", "", 11)
	x := centerX - 45
	for _, s := range slices {
		pdf.SetFillColor(s.color.r, s.color.g, s.color.b)
		pdf.Rect(x, y, 5, 5, "F")
		pdf.SetXY(x+7, y-1)
		pdf.CellFormat(40, 7, s.label, "", 0, "L", false, 0, "")
		x += 50
	}
}
