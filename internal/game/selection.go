package game

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const DefaultSelectAttempts = 5

// SelectionObserver is told how every selection ended.
type SelectionObserver interface {
	ObserveSelection(question Question, attempts int)
}

type Selector struct {
	questions QuestionStore
	settings  SettingsStore
	resolver  Resolver
	attempts  int
	observer  SelectionObserver
	log       *zap.Logger
}

type SelectorOption func(*Selector)

func WithResolver(resolver Resolver) SelectorOption {
	return func(s *Selector) { s.resolver = resolver }
}

func WithAttempts(attempts int) SelectorOption {
	return func(s *Selector) {
		switch {
		case attempts > DefaultSelectAttempts:
			s.attempts = DefaultSelectAttempts
		case attempts > 0:
			s.attempts = attempts
		}
	}
}

func WithObserver(observer SelectionObserver) SelectorOption {
	return func(s *Selector) { s.observer = observer }
}

func WithLogger(log *zap.Logger) SelectorOption {
	return func(s *Selector) {
		if log != nil {
			s.log = log
		}
	}
}

func NewSelector(questions QuestionStore, settings SettingsStore, opts ...SelectorOption) *Selector {
	s := &Selector{
		questions: questions,
		settings:  settings,
		attempts:  DefaultSelectAttempts,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the guild's rating policy, falling back to the default
// when the guild is unknown, has no row, or the lookup fails.
func (s *Selector) Policy(ctx context.Context, guildID *int64) RatingPolicy {
	if guildID == nil || s.settings == nil {
		return DefaultPolicy
	}
	policy, ok, err := s.settings.GetRating(ctx, *guildID)
	if err != nil {
		s.log.Warn("rating lookup failed", zap.Int64("guild_id", *guildID), zap.Error(err))
		return DefaultPolicy
	}
	if !ok {
		return DefaultPolicy
	}
	return policy
}

// Select picks a random question of questionType visible to guildID. The
// rating is re-resolved on every attempt, so an ALL policy gets a fresh coin
// flip each time. After the attempt budget is spent the sentinel is returned.
func (s *Selector) Select(ctx context.Context, questionType QuestionType, guildID *int64) Question {
	return s.SelectWithPolicy(ctx, questionType, s.Policy(ctx, guildID), guildID)
}

func (s *Selector) SelectWithPolicy(ctx context.Context, questionType QuestionType, policy RatingPolicy, guildID *int64) Question {
	for attempt := 1; attempt <= s.attempts; attempt++ {
		rating := s.resolver.Resolve(policy)
		question, err := s.questions.RandomQuestion(ctx, questionType, rating, guildID)
		if err == nil {
			s.observe(question, attempt)
			return question
		}
		if !errors.Is(err, ErrQuestionNotFound) {
			s.log.Warn("random question query failed",
				zap.Int("attempt", attempt),
				zap.String("rating", string(rating)),
				zap.Error(err),
			)
		}
	}
	s.log.Info("no eligible question, serving sentinel",
		zap.String("question_type", string(questionType)),
		zap.String("policy", string(policy)),
	)
	sentinel := Sentinel()
	s.observe(sentinel, s.attempts)
	return sentinel
}

func (s *Selector) observe(question Question, attempts int) {
	if s.observer != nil {
		s.observer.ObserveSelection(question, attempts)
	}
}
