// Package cli is the terminal front end: an interactive quiz plus catalog
// maintenance commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/remaimber-it/sattutor/internal/infrastructure/config"
)

// NewRootCmd builds the tutor command tree.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "tutor",
		Short: "An SAT math practice tutor",
		Long: `Tutor draws SAT math questions from a catalog, judges your answers
with an LLM (falling back to an exact comparison when it is unavailable)
and tracks your accuracy over the session.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&cfg.QuestionsPath, "questions", "q", cfg.QuestionsPath, "question catalog (.json, .yaml or .db)")

	rootCmd.AddCommand(
		newPracticeCmd(cfg),
		newTopicsCmd(cfg),
		newImportCmd(cfg),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newFileLogger writes JSON logs to a rotated file so the terminal only
// shows the quiz.
func newFileLogger(path string) *slog.Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}
