// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mood classifies free-text mood into good, bad, or neutral.

Scoring uses VADER's compound score, seeded with three locale terms so that
the labels themselves score predictably:

	c := mood.New(mood.Russian)
	c.Label("хорошее") // "хорошее"

Thresholds: compound >= 0.5 is positive, <= -0.05 is negative, anything in
between is neutral.

Apply overwrites a record's mood with the label.
*/
package mood
