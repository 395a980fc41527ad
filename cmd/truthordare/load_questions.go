package main

import (
	"context"
	"errors"
	"fmt"

	"truth-or-dare/internal/config"
	"truth-or-dare/internal/db"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func loadQuestionsCmd(a *app) *cobra.Command {
	filePath := "db/seeds/questions.csv"
	cmd := &cobra.Command{
		Use:   "load-questions",
		Short: "Import global questions from a CSV or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.loadQuestions(cmd.Context(), filePath)
		},
	}
	cmd.Flags().StringVar(&filePath, "file", filePath, "path to a .csv or .yaml question file")
	return cmd
}

func (a *app) loadQuestions(ctx context.Context, path string) error {
	if a.cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	seeds, err := db.ReadSeedFile(path)
	if err != nil {
		return fmt.Errorf("failed to read questions: %w", err)
	}

	conn, err := db.Open(db.OptionsFromConfig(a.cfg))
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close(conn)
	if a.cfg.DBDriver == config.DriverSQLite {
		if err := db.Migrate(conn); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	inserted, err := db.LoadSeedQuestions(ctx, conn, seeds)
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}
	a.log.Info("loaded questions",
		zap.String("file", path),
		zap.Int("read", len(seeds)),
		zap.Int("inserted", inserted),
	)
	return nil
}
