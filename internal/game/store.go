package game

import (
	"context"
	"errors"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrDuplicateQuestion = errors.New("question already exists")
)

// QuestionStore reads and writes questions. Implementations must be safe for
// concurrent use.
type QuestionStore interface {
	// RandomQuestion returns one question of the given type and rating that
	// is visible to guildID, chosen uniformly among eligible rows. It returns
	// ErrQuestionNotFound when nothing matches.
	RandomQuestion(ctx context.Context, questionType QuestionType, rating Rating, guildID *int64) (Question, error)
	// ListVisible returns the guild's questions plus every global question.
	ListVisible(ctx context.Context, guildID *int64) ([]Question, error)
	// ListCustom returns only the guild's own questions, or nothing for a nil guild.
	ListCustom(ctx context.Context, guildID *int64) ([]Question, error)
	Insert(ctx context.Context, question Question) (Question, error)
	Delete(ctx context.Context, guildID int64, uid string) (bool, error)
	ExistsInGuild(ctx context.Context, guildID int64, uid string) (bool, error)
}

// SettingsStore persists per-guild settings with upsert semantics.
type SettingsStore interface {
	// GetRating reports ok=false when the guild has no stored rating.
	GetRating(ctx context.Context, guildID int64) (policy RatingPolicy, ok bool, err error)
	UpsertRating(ctx context.Context, guildID int64, policy RatingPolicy) error
	GetPermission(ctx context.Context, guildID int64) (adminOnly bool, err error)
	UpsertPermission(ctx context.Context, guildID int64, adminOnly bool) error
}
