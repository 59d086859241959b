// Package stats derives performance figures from an attempt history. Every
// function is pure: it never modifies its input and returns the same result
// for the same history.
package stats

import (
	"math"
	"slices"
	"strings"

	"github.com/remaimber-it/sattutor/internal/domain/attempt"
)

// Metrics summarises a session's attempts. Accuracy is a percentage rounded
// to two decimals; the per-label maps hold the fraction correct in [0,1].
type Metrics struct {
	TotalQuestions int                `json:"total_questions"`
	CorrectAnswers int                `json:"correct_answers"`
	Accuracy       float64            `json:"accuracy"`
	ByTopic        map[string]float64 `json:"by_topic"`
	ByDifficulty   map[string]float64 `json:"by_difficulty"`
}

// ProgressPoint is the accuracy over the first Index+1 attempts.
type ProgressPoint struct {
	Index              int     `json:"index"`
	CumulativeAccuracy float64 `json:"cumulative_accuracy"`
}

// GroupRow is one bar of a per-label breakdown; Accuracy is a percentage.
type GroupRow struct {
	Label    string  `json:"label"`
	Attempts int     `json:"attempts"`
	Accuracy float64 `json:"accuracy"`
}

// Compute returns the aggregate metrics. An empty history yields zeros and
// empty maps.
func Compute(records []attempt.Record) Metrics {
	m := Metrics{
		TotalQuestions: len(records),
		CorrectAnswers: countCorrect(records),
		ByTopic:        meanBy(records, byTopic),
		ByDifficulty:   meanBy(records, byDifficulty),
	}
	m.Accuracy = accuracy(m.CorrectAnswers, m.TotalQuestions)
	return m
}

// ProgressSeries returns the expanding-window accuracy after each attempt,
// in attempt order.
func ProgressSeries(records []attempt.Record) []ProgressPoint {
	points := make([]ProgressPoint, len(records))
	correct := 0
	for i, r := range records {
		if r.Correct {
			correct++
		}
		points[i] = ProgressPoint{
			Index:              i,
			CumulativeAccuracy: float64(correct) / float64(i+1) * 100,
		}
	}
	return points
}

// TopicBreakdown returns one row per topic, sorted by topic label.
func TopicBreakdown(records []attempt.Record) []GroupRow {
	return breakdown(records, byTopic)
}

// DifficultyBreakdown returns one row per difficulty, sorted by label.
func DifficultyBreakdown(records []attempt.Record) []GroupRow {
	return breakdown(records, byDifficulty)
}

// AccuracyDelta is the change in accuracy caused by the most recent attempt.
// It needs at least two attempts.
func AccuracyDelta(records []attempt.Record) (float64, bool) {
	if len(records) < 2 {
		return 0, false
	}
	previous := records[:len(records)-1]
	before := accuracy(countCorrect(previous), len(previous))
	now := accuracy(countCorrect(records), len(records))
	return round2(now - before), true
}

func byTopic(r attempt.Record) string      { return r.Topic }
func byDifficulty(r attempt.Record) string { return r.Difficulty }

type tally struct {
	attempts int
	correct  int
}

func group(records []attempt.Record, label func(attempt.Record) string) map[string]*tally {
	groups := make(map[string]*tally)
	for _, r := range records {
		g, ok := groups[label(r)]
		if !ok {
			g = &tally{}
			groups[label(r)] = g
		}
		g.attempts++
		if r.Correct {
			g.correct++
		}
	}
	return groups
}

func meanBy(records []attempt.Record, label func(attempt.Record) string) map[string]float64 {
	groups := group(records, label)
	means := make(map[string]float64, len(groups))
	for k, g := range groups {
		means[k] = float64(g.correct) / float64(g.attempts)
	}
	return means
}

func breakdown(records []attempt.Record, label func(attempt.Record) string) []GroupRow {
	groups := group(records, label)
	rows := make([]GroupRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, GroupRow{
			Label:    k,
			Attempts: g.attempts,
			Accuracy: float64(g.correct) / float64(g.attempts) * 100,
		})
	}
	slices.SortFunc(rows, func(a, b GroupRow) int {
		return strings.Compare(a.Label, b.Label)
	})
	return rows
}

func countCorrect(records []attempt.Record) int {
	n := 0
	for _, r := range records {
		if r.Correct {
			n++
		}
	}
	return n
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(correct) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
