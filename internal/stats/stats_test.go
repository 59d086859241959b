package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/sattutor/internal/domain/attempt"
	"github.com/remaimber-it/sattutor/internal/stats"
)

func rec(topic, difficulty string, correct bool) attempt.Record {
	return attempt.Record{QuestionID: topic + "-" + difficulty, Topic: topic, Difficulty: difficulty, Correct: correct}
}

func history(results ...bool) []attempt.Record {
	records := make([]attempt.Record, len(results))
	for i, ok := range results {
		records[i] = rec("Algebra", "Easy", ok)
	}
	return records
}

func TestCompute_Empty(t *testing.T) {
	m := stats.Compute(nil)

	assert.Equal(t, 0, m.TotalQuestions)
	assert.Equal(t, 0, m.CorrectAnswers)
	assert.Equal(t, 0.0, m.Accuracy)
	assert.NotNil(t, m.ByTopic)
	assert.Empty(t, m.ByTopic)
	assert.NotNil(t, m.ByDifficulty)
	assert.Empty(t, m.ByDifficulty)
}

func TestCompute_AccuracyRoundedToTwoDecimals(t *testing.T) {
	tests := []struct {
		results []bool
		want    float64
	}{
		{[]bool{true}, 100},
		{[]bool{false}, 0},
		{[]bool{true, false}, 50},
		{[]bool{true, false, false}, 33.33},
		{[]bool{true, true, false}, 66.67},
		{[]bool{true, false, false, false, false, false}, 16.67},
		{[]bool{true, true, true, true, true, true, false}, 85.71},
	}

	for _, tt := range tests {
		records := history(tt.results...)
		m := stats.Compute(records)

		correct := 0
		for _, ok := range tt.results {
			if ok {
				correct++
			}
		}
		expected := math.Round(100*float64(correct)/float64(len(tt.results))*100) / 100

		assert.Equal(t, tt.want, m.Accuracy, "results %v", tt.results)
		assert.Equal(t, expected, m.Accuracy, "results %v", tt.results)
		assert.Equal(t, len(tt.results), m.TotalQuestions)
		assert.Equal(t, correct, m.CorrectAnswers)
	}
}

func TestCompute_ByTopicAndDifficulty(t *testing.T) {
	records := []attempt.Record{
		rec("Algebra", "Easy", true),
		rec("Algebra", "Hard", false),
		rec("Geometry", "Hard", false),
		rec("Algebra", "Easy", true),
		rec("Algebra", "Easy", true),
	}

	m := stats.Compute(records)

	assert.Equal(t, map[string]float64{"Algebra": 0.75, "Geometry": 0}, m.ByTopic)
	assert.Equal(t, map[string]float64{"Easy": 1, "Hard": 0}, m.ByDifficulty)
	assert.Equal(t, 60.0, m.Accuracy)
}

func TestCompute_Idempotent(t *testing.T) {
	records := []attempt.Record{
		rec("Algebra", "Easy", true),
		rec("Geometry", "Hard", false),
		rec("Statistics", "Medium", true),
	}
	snapshot := append([]attempt.Record(nil), records...)

	first := stats.Compute(records)
	second := stats.Compute(records)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records, "Compute must not modify its input")
	assert.Equal(t, stats.ProgressSeries(records), stats.ProgressSeries(records))
	assert.Equal(t, stats.TopicBreakdown(records), stats.TopicBreakdown(records))
}

func TestProgressSeries(t *testing.T) {
	points := stats.ProgressSeries(history(true, false, false, true))

	require.Len(t, points, 4)
	want := []float64{100, 50, 100.0 / 3, 50}
	for i, p := range points {
		assert.Equal(t, i, p.Index)
		assert.InDelta(t, want[i], p.CumulativeAccuracy, 1e-9, "point %d", i)
	}
}

func TestProgressSeries_Empty(t *testing.T) {
	assert.Empty(t, stats.ProgressSeries(nil))
}

func TestTopicBreakdown_SortedByLabel(t *testing.T) {
	records := []attempt.Record{
		rec("Geometry", "Hard", true),
		rec("Algebra", "Easy", false),
		rec("Statistics", "Easy", true),
		rec("Algebra", "Easy", true),
	}

	rows := stats.TopicBreakdown(records)

	assert.Equal(t, []stats.GroupRow{
		{Label: "Algebra", Attempts: 2, Accuracy: 50},
		{Label: "Geometry", Attempts: 1, Accuracy: 100},
		{Label: "Statistics", Attempts: 1, Accuracy: 100},
	}, rows)
}

func TestDifficultyBreakdown(t *testing.T) {
	records := []attempt.Record{
		rec("Geometry", "Hard", false),
		rec("Algebra", "Easy", true),
		rec("Algebra", "Hard", true),
	}

	assert.Equal(t, []stats.GroupRow{
		{Label: "Easy", Attempts: 1, Accuracy: 100},
		{Label: "Hard", Attempts: 2, Accuracy: 50},
	}, stats.DifficultyBreakdown(records))
}

func TestAccuracyDelta(t *testing.T) {
	_, ok := stats.AccuracyDelta(history(true))
	assert.False(t, ok, "delta needs two attempts")

	delta, ok := stats.AccuracyDelta(history(true, false))
	require.True(t, ok)
	assert.Equal(t, -50.0, delta)

	delta, ok = stats.AccuracyDelta(history(true, false, true))
	require.True(t, ok)
	assert.Equal(t, 16.67, delta)
}
