package db

import (
	"context"
	"errors"

	"truth-or-dare/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ game.SettingsStore = (*SettingsStore)(nil)

// SettingsStore keeps one guild_settings row per guild. Rating and admin are
// upserted independently; a guild without a row reads as the defaults.
type SettingsStore struct {
	conn *gorm.DB
}

func NewSettingsStore(conn *gorm.DB) *SettingsStore {
	return &SettingsStore{conn: conn}
}

func (s *SettingsStore) GetRating(ctx context.Context, guildID int64) (game.RatingPolicy, bool, error) {
	record, ok, err := s.find(ctx, guildID)
	if err != nil || !ok {
		return "", false, err
	}
	policy, ok := game.ParseRatingPolicy(record.Rating)
	if !ok {
		return "", false, nil
	}
	return policy, true, nil
}

func (s *SettingsStore) UpsertRating(ctx context.Context, guildID int64, policy game.RatingPolicy) error {
	if s.conn == nil {
		return ErrNilConnection
	}
	record := GuildSettings{GuildID: guildID, Rating: string(policy)}
	return s.conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(&record).Error
}

func (s *SettingsStore) GetPermission(ctx context.Context, guildID int64) (bool, error) {
	record, ok, err := s.find(ctx, guildID)
	if err != nil || !ok {
		return false, err
	}
	return record.Admin, nil
}

func (s *SettingsStore) UpsertPermission(ctx context.Context, guildID int64, adminOnly bool) error {
	if s.conn == nil {
		return ErrNilConnection
	}
	record := GuildSettings{
		GuildID: guildID,
		Rating:  string(game.DefaultPolicy),
		Admin:   adminOnly,
	}
	return s.conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"admin", "updated_at"}),
	}).Create(&record).Error
}

// Settings reads both fields at once, filling in defaults for a missing row.
func (s *SettingsStore) Settings(ctx context.Context, guildID int64) (game.Settings, error) {
	settings := game.DefaultSettings()
	record, ok, err := s.find(ctx, guildID)
	if err != nil || !ok {
		return settings, err
	}
	if policy, ok := game.ParseRatingPolicy(record.Rating); ok {
		settings.Rating = policy
	}
	settings.AdminOnly = record.Admin
	return settings, nil
}

func (s *SettingsStore) find(ctx context.Context, guildID int64) (GuildSettings, bool, error) {
	if s.conn == nil {
		return GuildSettings{}, false, ErrNilConnection
	}
	var record GuildSettings
	err := s.conn.WithContext(ctx).Where("guild_id = ?", guildID).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GuildSettings{}, false, nil
	}
	if err != nil {
		return GuildSettings{}, false, err
	}
	return record, true, nil
}
