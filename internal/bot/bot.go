// Package bot turns Discord messages, slash commands and button presses into
// truth-or-dare replies.
package bot

import (
	"context"

	"truth-or-dare/internal/game"
	"truth-or-dare/internal/metrics"

	"go.uber.org/zap"
)

// EventRecorder stores an audit entry for an administrative change.
type EventRecorder interface {
	Record(ctx context.Context, guildID int64, eventType string, payload any) error
}

type Bot struct {
	questions game.QuestionStore
	settings  game.SettingsStore
	selector  *game.Selector
	events    EventRecorder
	metrics   *metrics.Metrics
	log       *zap.Logger
	prefix    string
}

type options struct {
	events   EventRecorder
	metrics  *metrics.Metrics
	log      *zap.Logger
	prefix   string
	attempts int
	resolver game.Resolver
}

type Option func(*options)

func WithEvents(events EventRecorder) Option {
	return func(o *options) { o.events = events }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func WithPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

func WithSelectAttempts(attempts int) Option {
	return func(o *options) { o.attempts = attempts }
}

func WithResolver(resolver game.Resolver) Option {
	return func(o *options) { o.resolver = resolver }
}

func New(questions game.QuestionStore, settings game.SettingsStore, opts ...Option) *Bot {
	o := options{
		log:      zap.NewNop(),
		prefix:   "!",
		attempts: game.DefaultSelectAttempts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	selectorOpts := []game.SelectorOption{
		game.WithAttempts(o.attempts),
		game.WithResolver(o.resolver),
		game.WithLogger(o.log.Named("selector")),
	}
	if o.metrics != nil {
		selectorOpts = append(selectorOpts, game.WithObserver(o.metrics))
	}
	return &Bot{
		questions: questions,
		settings:  settings,
		selector:  game.NewSelector(questions, settings, selectorOpts...),
		events:    o.events,
		metrics:   o.metrics,
		log:       o.log,
		prefix:    o.prefix,
	}
}

func (b *Bot) recordEvent(ctx context.Context, guildID int64, eventType string, payload EventPayload) {
	if b.events == nil {
		return
	}
	if err := b.events.Record(ctx, guildID, eventType, payload); err != nil {
		b.log.Warn("record event failed",
			zap.Int64("guild_id", guildID),
			zap.String("event", eventType),
			zap.Error(err),
		)
	}
}
