package db

import (
	"context"
	"errors"
	"fmt"

	"truth-or-dare/internal/game"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var _ game.QuestionStore = (*QuestionStore)(nil)

type QuestionStore struct {
	conn   *gorm.DB
	newUID func() string
}

func NewQuestionStore(conn *gorm.DB) *QuestionStore {
	return &QuestionStore{conn: conn, newUID: uuid.NewString}
}

func (s *QuestionStore) RandomQuestion(ctx context.Context, questionType game.QuestionType, rating game.Rating, guildID *int64) (game.Question, error) {
	if s.conn == nil {
		return game.Question{}, ErrNilConnection
	}
	var record Question
	err := visibleTo(s.conn.WithContext(ctx), guildID).
		Where("question_type = ? AND rating = ?", string(questionType), string(rating)).
		Order("random()").
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return game.Question{}, game.ErrQuestionNotFound
	}
	if err != nil {
		return game.Question{}, err
	}
	return record.toDomain(), nil
}

func (s *QuestionStore) ListVisible(ctx context.Context, guildID *int64) ([]game.Question, error) {
	if s.conn == nil {
		return nil, ErrNilConnection
	}
	var records []Question
	if err := visibleTo(s.conn.WithContext(ctx), guildID).Order("created_at asc, uid asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (s *QuestionStore) ListCustom(ctx context.Context, guildID *int64) ([]game.Question, error) {
	if guildID == nil {
		return nil, nil
	}
	if s.conn == nil {
		return nil, ErrNilConnection
	}
	var records []Question
	if err := s.conn.WithContext(ctx).
		Where("guild_id = ?", *guildID).
		Order("created_at asc, uid asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// Insert stores question, assigning a UID when it has none.
func (s *QuestionStore) Insert(ctx context.Context, question game.Question) (game.Question, error) {
	if s.conn == nil {
		return game.Question{}, ErrNilConnection
	}
	if question.IsSentinel() {
		return game.Question{}, errors.New("refusing to store placeholder question")
	}
	if question.UID == "" {
		question.UID = s.newUID()
	}
	record := fromDomain(question)
	if err := s.conn.WithContext(ctx).Create(&record).Error; err != nil {
		if isUniqueViolation(err) {
			return game.Question{}, fmt.Errorf("%w: uid %s", game.ErrDuplicateQuestion, question.UID)
		}
		return game.Question{}, err
	}
	return record.toDomain(), nil
}

func (s *QuestionStore) Delete(ctx context.Context, guildID int64, uid string) (bool, error) {
	if s.conn == nil {
		return false, ErrNilConnection
	}
	result := s.conn.WithContext(ctx).
		Where("guild_id = ? AND uid = ?", guildID, uid).
		Delete(&Question{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *QuestionStore) ExistsInGuild(ctx context.Context, guildID int64, uid string) (bool, error) {
	if s.conn == nil {
		return false, ErrNilConnection
	}
	var count int64
	if err := s.conn.WithContext(ctx).
		Model(&Question{}).
		Where("guild_id = ? AND uid = ?", guildID, uid).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func visibleTo(tx *gorm.DB, guildID *int64) *gorm.DB {
	if guildID == nil {
		return tx.Where("guild_id IS NULL")
	}
	return tx.Where("(guild_id = ? OR guild_id IS NULL)", *guildID)
}

func (q Question) toDomain() game.Question {
	rating, _ := game.ParseRating(q.Rating)
	return game.Question{
		UID:     q.UID,
		GuildID: q.GuildID,
		Prompt:  q.Prompt,
		Type:    game.ParseQuestionType(q.QuestionType),
		Rating:  rating,
	}
}

func fromDomain(q game.Question) Question {
	return Question{
		UID:          q.UID,
		GuildID:      q.GuildID,
		Prompt:       q.Prompt,
		QuestionType: string(q.Type),
		Rating:       string(q.Rating),
	}
}

func toDomainList(records []Question) []game.Question {
	out := make([]game.Question, 0, len(records))
	for _, record := range records {
		out = append(out, record.toDomain())
	}
	return out
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
