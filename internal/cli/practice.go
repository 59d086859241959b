package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/sattutor/internal/catalog"
	"github.com/remaimber-it/sattutor/internal/domain/question"
	"github.com/remaimber-it/sattutor/internal/grader"
	"github.com/remaimber-it/sattutor/internal/infrastructure/config"
	"github.com/remaimber-it/sattutor/internal/service"
)

func newPracticeCmd(cfg *config.Config) *cobra.Command {
	var topic, difficulty string

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Start an interactive practice session",
		Long: `Start an interactive practice session.
Questions are drawn at random from the catalog, optionally restricted to a
topic and a difficulty. Answer with the option number, "s" to skip to the
next question or "q" to finish and see your charts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newFileLogger(cfg.LogFile)
			ctx := cmd.Context()

			questions := catalog.NewLoader(logger).LoadOrEmpty(ctx, cfg.QuestionsPath)
			if len(questions) == 0 {
				return fmt.Errorf("no questions could be loaded from %s", cfg.QuestionsPath)
			}

			llm := grader.NewLLMClient(grader.LLMConfig{
				URL:         cfg.LLMURL,
				Model:       cfg.LLMModel,
				APIKey:      cfg.LLMAPIKey,
				Temperature: cfg.LLMTemperature,
			})
			if cfg.LLMAPIKey == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠️ No LLM API key set: answers are checked by exact comparison only.")
			}
			analyzer := grader.NewAnalyzer(llm, cfg.AnalysisTimeout, logger, nil)
			session := service.NewSession(questions, analyzer)
			logger.Info("practice session started", "session_id", session.ID, "questions", len(questions))

			return runPractice(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), session, topic, difficulty)
		},
	}
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "only ask questions on this topic")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "only ask questions of this difficulty")
	return cmd
}

var errQuit = errors.New("quit")

// runPractice drives one session until the user quits or input ends.
func runPractice(ctx context.Context, in io.Reader, out io.Writer, s *service.Session, topic, difficulty string) error {
	reader := bufio.NewReader(in)

	for n := 1; ; n++ {
		q, err := s.NextQuestion(topic, difficulty)
		var emptyErr *service.EmptyFilterError
		if errors.As(err, &emptyErr) {
			fmt.Fprintf(out, "⚠️ %s\n%s\n", emptyErr.Error(), emptyErr.Suggestion())
			return nil
		}
		if err != nil {
			return err
		}

		renderQuestion(out, n, q)
		answer, err := readAnswer(reader, out, q)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if answer == "" {
			continue
		}

		fmt.Fprintln(out, "\nAnalyzing your answer...")
		fb, err := s.Submit(ctx, answer)
		if err != nil {
			return err
		}
		renderFeedback(out, fb)
		delta, ok := s.AccuracyDelta()
		renderMetrics(out, s.Metrics(), delta, ok)
	}

	renderSummary(out, s)
	return nil
}

// readAnswer prompts until the user picks an option, skips ("" returned) or
// quits.
func readAnswer(reader *bufio.Reader, out io.Writer, q question.Question) (string, error) {
	for {
		fmt.Fprintf(out, "\nYour answer (1-%d, s to skip, q to quit): ", len(q.Options))
		line, err := reader.ReadString('\n')
		input := strings.TrimSpace(line)
		if input == "" && err != nil {
			return "", err
		}

		switch strings.ToLower(input) {
		case "q", "quit":
			return "", errQuit
		case "s", "skip":
			return "", nil
		}
		if i, convErr := strconv.Atoi(input); convErr == nil && i >= 1 && i <= len(q.Options) {
			return q.Options[i-1], nil
		}
		if q.HasOption(input) {
			return input, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(out, "⚠️ Pick one of the listed option numbers.")
	}
}

func renderSummary(out io.Writer, s *service.Session) {
	m := s.Metrics()
	if m.TotalQuestions == 0 {
		fmt.Fprintln(out, "\nNo answers submitted. See you next time!")
		return
	}
	delta, ok := s.AccuracyDelta()
	renderMetrics(out, m, delta, ok)
	renderProgressChart(out, s.Progress())
	renderBreakdown(out, "Accuracy by topic", s.TopicBreakdown())
	renderBreakdown(out, "Accuracy by difficulty", s.DifficultyBreakdown())
	fmt.Fprintln(out, "\n🎉 Practice session complete!")
}
