package bot

import (
	"fmt"
	"strconv"
	"strings"

	"truth-or-dare/internal/game"
)

// Reply is everything the transport needs to answer a trigger. Exactly one
// of Content, Question or Page is set.
type Reply struct {
	Content   string
	Question  *QuestionCard
	Page      *game.PageView
	Ephemeral bool
}

type QuestionCard struct {
	Title       string
	Description string
	Footer      string
}

func textReply(content string) Reply {
	return Reply{Content: content}
}

func privateReply(content string) Reply {
	return Reply{Content: content, Ephemeral: true}
}

// questionReply titles the card by the requested type, so the placeholder
// still reads as a truth or a dare.
func questionReply(requested game.QuestionType, question game.Question) Reply {
	return Reply{Question: &QuestionCard{
		Title:       requested.Title(),
		Description: question.Prompt,
		Footer:      fmt.Sprintf("Rating: %s | UID: %s", question.Rating, question.UID),
	}}
}

func pageReply(view game.PageView) Reply {
	if view.Empty {
		return textReply(view.Message)
	}
	return Reply{Page: &view}
}

// Caller identifies who triggered an interaction and where.
type Caller struct {
	GuildID *int64
	UserID  string
	Admin   bool
}

// ParseGuildID converts a Discord snowflake. Empty or invalid ids (direct
// messages) yield nil.
func ParseGuildID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
