package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/sattutor/internal/catalog"
	"github.com/remaimber-it/sattutor/internal/infrastructure/config"
)

func newTopicsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the topics and difficulties in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newFileLogger(cfg.LogFile)
			questions, err := catalog.NewLoader(logger).Load(cmd.Context(), cfg.QuestionsPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📚 %d questions in %s\n", len(questions), cfg.QuestionsPath)
			fmt.Fprintf(out, "Topics:       %s\n", strings.Join(catalog.Topics(questions), ", "))
			fmt.Fprintf(out, "Difficulties: %s\n", strings.Join(catalog.Difficulties(questions), ", "))
			return nil
		},
	}
}
