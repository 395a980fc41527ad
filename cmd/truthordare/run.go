package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"truth-or-dare/internal/bot"
	"truth-or-dare/internal/config"
	"truth-or-dare/internal/db"
	"truth-or-dare/internal/metrics"
	"truth-or-dare/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.run(ctx)
		},
	}
}

func (a *app) run(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	conn, err := db.Open(db.OptionsFromConfig(a.cfg))
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			a.log.Warn("close database", zap.Error(err))
		}
	}()
	if a.cfg.DBDriver == config.DriverSQLite {
		if err := db.Migrate(conn); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	questions := db.NewQuestionStore(conn)
	settings := db.NewSettingsStore(conn)
	events := db.NewEventStore(conn)
	m := metrics.New()

	b := bot.New(questions, settings,
		bot.WithEvents(events),
		bot.WithMetrics(m),
		bot.WithLogger(a.log.Named("bot")),
		bot.WithPrefix(a.cfg.CommandPrefix),
	)
	session, err := bot.NewSession(a.cfg.DiscordToken, a.cfg.DiscordGuildID, b, a.log.Named("discord"))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Run(ctx)
	})
	if a.cfg.HTTPAddr != "" {
		gin.SetMode(gin.ReleaseMode)
		srv := server.New(server.Deps{
			Questions: questions,
			Settings:  settings,
			Events:    events,
			Metrics:   m,
		}, a.log.Named("http"))
		g.Go(func() error {
			return srv.Run(ctx, a.cfg.HTTPAddr)
		})
	}

	a.log.Info("truth or dare running",
		zap.String("driver", a.cfg.DBDriver),
		zap.String("http_addr", a.cfg.HTTPAddr),
		zap.String("prefix", a.cfg.CommandPrefix),
	)
	return g.Wait()
}
