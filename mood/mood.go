// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mood

import (
	"fmt"

	"github.com/jonreiter/govader"

	"github.com/danielhkuo/habit-tracker/tracker"
)

// Compound score thresholds. The negative bar is much closer to zero than
// the positive one.
const (
	PositiveThreshold = 0.5
	NegativeThreshold = -0.05
)

type Category string

const (
	Positive Category = "positive"
	Negative Category = "negative"
	Neutral  Category = "neutral"
)

// Locale holds the labels a category is reported as and the lexicon terms
// added to the sentiment model for that language.
type Locale struct {
	Code     string
	Positive string
	Negative string
	Neutral  string
	Lexicon  map[string]float64
}

var English = Locale{
	Code:     "en",
	Positive: "good",
	Negative: "bad",
	Neutral:  "neutral",
	Lexicon:  map[string]float64{"bad": -2.0, "good": 4.0, "normal": 2.5},
}

var Russian = Locale{
	Code:     "ru",
	Positive: "хорошее",
	Negative: "плохое",
	Neutral:  "нормальное",
	Lexicon:  map[string]float64{"плохое": -2.0, "хорошее": 4.0, "нормальное": 2.5},
}

// LocaleByCode returns the locale for "en" or "ru".
func LocaleByCode(code string) (Locale, error) {
	switch code {
	case English.Code:
		return English, nil
	case Russian.Code:
		return Russian, nil
	default:
		return Locale{}, fmt.Errorf("unsupported mood locale %q", code)
	}
}

func (l Locale) Label(c Category) string {
	switch c {
	case Positive:
		return l.Positive
	case Negative:
		return l.Negative
	default:
		return l.Neutral
	}
}

// Scorer returns a compound sentiment score in [-1, 1].
type Scorer interface {
	Compound(text string) float64
}

type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func (v *vaderScorer) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// NewVaderScorer builds a VADER analyzer with extra lexicon entries.
// Each call gets its own lexicon; overrides never leak between scorers.
func NewVaderScorer(overrides map[string]float64) Scorer {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	lexicon := make(map[string]float64, len(analyzer.Lexicon)+len(overrides))
	for term, score := range analyzer.Lexicon {
		lexicon[term] = score
	}
	for term, score := range overrides {
		lexicon[term] = score
	}
	analyzer.Lexicon = lexicon
	return &vaderScorer{analyzer: analyzer}
}

// Classifier maps free-text mood to one of three categories.
type Classifier struct {
	scorer Scorer
	locale Locale
}

// New returns a VADER-backed classifier for the locale.
func New(locale Locale) *Classifier {
	return NewWithScorer(NewVaderScorer(locale.Lexicon), locale)
}

func NewWithScorer(scorer Scorer, locale Locale) *Classifier {
	return &Classifier{scorer: scorer, locale: locale}
}

func (c *Classifier) Classify(text string) Category {
	score := c.scorer.Compound(text)
	switch {
	case score >= PositiveThreshold:
		return Positive
	case score <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Label classifies text and returns the localized label.
func (c *Classifier) Label(text string) string {
	return c.locale.Label(c.Classify(text))
}

// Apply replaces the record's mood text with its label and returns it.
// The original text is not kept.
func (c *Classifier) Apply(rec *tracker.Record) string {
	label := c.Label(rec.Mood)
	rec.UpdateMood(label)
	return label
}
