package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"truth-or-dare/internal/config"
	"truth-or-dare/internal/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd(a *app) *cobra.Command {
	dir := defaultMigrationsDir
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.migrate(dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", dir, "directory holding SQL migrations")
	return cmd
}

// migrate applies the SQL migrations for Postgres. SQLite databases are
// brought up to date from the GORM models instead.
func (a *app) migrate(dir string) error {
	if a.cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if a.cfg.DBDriver == config.DriverSQLite {
		conn, err := db.Open(db.OptionsFromConfig(a.cfg))
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer db.Close(conn)
		if err := db.Migrate(conn); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		a.log.Info("sqlite schema migrated")
		return nil
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), a.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("migration setup failed: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("database migration failed: %w", err)
	}
	a.log.Info("database migrations applied", zap.String("dir", dir))
	return nil
}

func migrateCreateCmd(a *app) *cobra.Command {
	var name string
	dir := defaultMigrationsDir
	cmd := &cobra.Command{
		Use:   "migrate-create",
		Short: "Create an empty up/down migration pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			up, down, err := createMigration(dir, name, time.Now())
			if err != nil {
				return err
			}
			a.log.Info("migration created", zap.String("up", up), zap.String("down", down))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "migration name")
	cmd.Flags().StringVar(&dir, "dir", dir, "directory holding SQL migrations")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func createMigration(dir, name string, now time.Time) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", errors.New("migration name is required")
	}
	if strings.ContainsAny(name, " \t/\\") {
		return "", "", errors.New("migration name must not contain spaces or slashes")
	}

	version := now.UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, name)
	upPath := filepath.Join(dir, base+".up.sql")
	downPath := filepath.Join(dir, base+".down.sql")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create migrations dir: %w", err)
	}
	if err := writeNewFile(upPath, "-- up migration\n"); err != nil {
		return "", "", fmt.Errorf("create up migration: %w", err)
	}
	if err := writeNewFile(downPath, "-- down migration\n"); err != nil {
		return "", "", fmt.Errorf("create down migration: %w", err)
	}
	return upPath, downPath, nil
}

func writeNewFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
