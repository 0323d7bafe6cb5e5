// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders habit statistics as PDF documents.

CompletionChart draws a pie chart of completed versus missed days:

	var buf bytes.Buffer
	if err := report.CompletionChart(&buf, habit); err != nil {
		return err
	}

Slices are filled polygons approximating the arcs; a habit with a 0% or 100%
rate is drawn as a single full circle.
*/
package report
