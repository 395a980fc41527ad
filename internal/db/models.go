package db

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	UID          string    `gorm:"column:uid;primaryKey;size:64"`
	Prompt       string    `gorm:"size:280;not null"`
	QuestionType string    `gorm:"size:8;not null;index:idx_questions_type_rating"`
	Rating       string    `gorm:"size:8;not null;index:idx_questions_type_rating"`
	GuildID      *int64    `gorm:"index"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (Question) TableName() string { return "questions" }

type GuildSettings struct {
	GuildID   int64     `gorm:"primaryKey;autoIncrement:false"`
	Rating    string    `gorm:"size:8;not null"`
	Admin     bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (GuildSettings) TableName() string { return "guild_settings" }

// QuestionEvent is an audit row for an administrative change in a guild.
type QuestionEvent struct {
	ID        uint           `gorm:"primaryKey"`
	GuildID   int64          `gorm:"index;not null"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
}

func (QuestionEvent) TableName() string { return "question_events" }
