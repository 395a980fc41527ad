package db

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventStore appends audit rows for guild administration.
type EventStore struct {
	conn *gorm.DB
}

func NewEventStore(conn *gorm.DB) *EventStore {
	return &EventStore{conn: conn}
}

func (s *EventStore) Record(ctx context.Context, guildID int64, eventType string, payload any) error {
	if s.conn == nil {
		return ErrNilConnection
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := QuestionEvent{
		GuildID: guildID,
		Type:    eventType,
		Payload: datatypes.JSON(data),
	}
	return s.conn.WithContext(ctx).Create(&event).Error
}

// Recent returns the newest events for a guild, newest first.
func (s *EventStore) Recent(ctx context.Context, guildID int64, limit int) ([]QuestionEvent, error) {
	if s.conn == nil {
		return nil, ErrNilConnection
	}
	if limit <= 0 {
		limit = 20
	}
	var events []QuestionEvent
	err := s.conn.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id desc").
		Limit(limit).
		Find(&events).Error
	return events, err
}
