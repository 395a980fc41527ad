// Package server runs the optional HTTP status surface: health, metrics and
// a read-only view of each guild's question catalog.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"truth-or-dare/internal/db"
	"truth-or-dare/internal/game"
	"truth-or-dare/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type EventLister interface {
	Recent(ctx context.Context, guildID int64, limit int) ([]db.QuestionEvent, error)
}

type SettingsReader interface {
	Settings(ctx context.Context, guildID int64) (game.Settings, error)
}

// Deps are the stores the handlers read from. Nil Settings or Events
// disable their routes.
type Deps struct {
	Questions game.QuestionStore
	Settings  SettingsReader
	Events    EventLister
	Metrics   *metrics.Metrics
}

type Server struct {
	questions game.QuestionStore
	settings  SettingsReader
	events    EventLister
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func New(deps Deps, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	registerValidators()
	return &Server{
		questions: deps.Questions,
		settings:  deps.Settings,
		events:    deps.Events,
		metrics:   deps.Metrics,
		log:       log,
	}
}

func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	guilds := router.Group("/guilds/:guild_id")
	guilds.GET("/questions", s.handleCatalog)
	if s.settings != nil {
		guilds.GET("/settings", s.handleSettings)
	}
	if s.events != nil {
		guilds.GET("/events", s.handleEvents)
	}
	return router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("status server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
