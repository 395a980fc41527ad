// Command truthordare runs the truth-or-dare Discord bot and its
// maintenance tasks.
package main

import (
	"fmt"
	"os"

	"truth-or-dare/internal/config"
	"truth-or-dare/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "db/migrations"

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	envFile string
	verbose bool
	cfg     config.Config
	log     *zap.Logger
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "truthordare",
		Short:         "Truth or dare Discord bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		runCmd(a),
		migrateCmd(a),
		migrateCreateCmd(a),
		loadQuestionsCmd(a),
	)
	return cmd
}

func (a *app) setup() error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}
	a.cfg = config.Load()
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}
	log, err := logging.New(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}
