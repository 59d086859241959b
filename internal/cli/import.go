package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/sattutor/internal/catalog"
	"github.com/remaimber-it/sattutor/internal/infrastructure/config"
	"github.com/remaimber-it/sattutor/internal/store"
)

func newImportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.json|catalog.yaml> <catalog.db>",
		Short: "Copy a question catalog into a SQLite database",
		Long: `Copy a question catalog into a SQLite database.
Questions whose id already exists in the database are replaced. Point
QUESTIONS_PATH (or --questions) at the .db file to practice from it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newFileLogger(cfg.LogFile)
			src, dst := args[0], args[1]

			questions, err := catalog.NewLoader(logger).Load(cmd.Context(), src)
			if err != nil {
				return err
			}

			db, err := store.NewSQLite(dst)
			if err != nil {
				return fmt.Errorf("open %s: %w", dst, err)
			}
			defer db.Close()

			if err := db.SaveQuestions(cmd.Context(), questions); err != nil {
				return fmt.Errorf("import into %s: %w", dst, err)
			}

			logger.Info("catalog imported", "source", src, "database", dst, "questions", len(questions))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d questions into %s\n", len(questions), dst)
			return nil
		},
	}
}
