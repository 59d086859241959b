package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/remaimber-it/sattutor/internal/domain/question"
	"github.com/remaimber-it/sattutor/internal/service"
	"github.com/remaimber-it/sattutor/internal/stats"
)

const barWidth = 30

func renderQuestion(w io.Writer, n int, q question.Question) {
	fmt.Fprintln(w, "\n========================================")
	fmt.Fprintf(w, "Question %d  [%s | %s]\n", n, q.Topic, q.Difficulty)
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, q.Question)
	fmt.Fprintln(w)
	for i, opt := range q.Options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
	}
}

func renderFeedback(w io.Writer, fb service.Feedback) {
	if fb.Verdict.IsCorrect {
		fmt.Fprintln(w, "\n✅ Correct!")
	} else {
		fmt.Fprintf(w, "\n❌ Incorrect. The correct answer is: %s\n", fb.Question.CorrectAnswer)
	}
	if fb.Question.Solution != "" {
		fmt.Fprintf(w, "\nSolution:\n%s\n", fb.Question.Solution)
	}
	fmt.Fprintf(w, "\nExplanation:\n%s\n", fb.Verdict.Explanation)
	if fb.ShowTips() {
		fmt.Fprintf(w, "\nHow to improve:\n%s\n", fb.Verdict.ImprovementTips)
	}
}

// renderMetrics prints the running totals. The delta line appears from the
// second attempt on.
func renderMetrics(w io.Writer, m stats.Metrics, delta float64, hasDelta bool) {
	fmt.Fprintln(w, "\n📊 Performance")
	fmt.Fprintln(w, "-------------")
	fmt.Fprintf(w, "Questions: %d\n", m.TotalQuestions)
	fmt.Fprintf(w, "Correct:   %d\n", m.CorrectAnswers)
	if hasDelta {
		fmt.Fprintf(w, "Accuracy:  %.2f%% (%+.2f)\n", m.Accuracy, delta)
	} else {
		fmt.Fprintf(w, "Accuracy:  %.2f%%\n", m.Accuracy)
	}
}

// renderProgressChart draws one bar per attempt showing the cumulative
// accuracy at that point.
func renderProgressChart(w io.Writer, points []stats.ProgressPoint) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintln(w, "\nProgress (cumulative accuracy)")
	for _, p := range points {
		fmt.Fprintf(w, "#%-3d %s %6.2f%%\n", p.Index+1, bar(p.CumulativeAccuracy), p.CumulativeAccuracy)
	}
}

// renderBreakdown draws one bar per label.
func renderBreakdown(w io.Writer, title string, rows []stats.GroupRow) {
	if len(rows) == 0 {
		return
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Label))
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s %s %6.2f%% (%d)\n", width, r.Label, bar(r.Accuracy), r.Accuracy, r.Attempts)
	}
}

func bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	filled = min(max(filled, 0), barWidth)
	return "|" + strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled) + "|"
}
