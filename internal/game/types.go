// Package game holds the truth-or-dare domain: question types, ratings,
// random selection under a rating policy, and catalog pagination with
// client-held cursors.
package game

import "strings"

type QuestionType string

const (
	TypeTruth QuestionType = "TRUTH"
	TypeDare  QuestionType = "DARE"
	TypeNone  QuestionType = "NONE"
)

// ParseQuestionType is case-insensitive. Anything other than truth or dare
// maps to TypeNone.
func ParseQuestionType(raw string) QuestionType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(TypeTruth):
		return TypeTruth
	case string(TypeDare):
		return TypeDare
	default:
		return TypeNone
	}
}

func (t QuestionType) Valid() bool {
	return t == TypeTruth || t == TypeDare
}

// Title is the heading shown above a served question.
func (t QuestionType) Title() string {
	if t == TypeTruth {
		return "Truth"
	}
	return "Dare"
}

type Rating string

const (
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
)

func ParseRating(raw string) (Rating, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(RatingPG):
		return RatingPG, true
	case string(RatingPG13):
		return RatingPG13, true
	default:
		return "", false
	}
}

// RatingPolicy is a community's configured content ceiling.
type RatingPolicy string

const (
	PolicyPG   RatingPolicy = "PG"
	PolicyPG13 RatingPolicy = "PG-13"
	PolicyAll  RatingPolicy = "ALL"

	DefaultPolicy = PolicyPG
)

func ParseRatingPolicy(raw string) (RatingPolicy, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(PolicyPG):
		return PolicyPG, true
	case string(PolicyPG13):
		return PolicyPG13, true
	case string(PolicyAll):
		return PolicyAll, true
	default:
		return "", false
	}
}

// Question is a single prompt. A nil GuildID marks a global question that
// every community can see.
type Question struct {
	UID     string
	GuildID *int64
	Prompt  string
	Type    QuestionType
	Rating  Rating
}

const SentinelUID = "0"

// Sentinel is served when no eligible question could be found. It is never
// written to a store.
func Sentinel() Question {
	guildID := int64(-1)
	return Question{
		UID:     SentinelUID,
		GuildID: &guildID,
		Prompt:  "N/A",
		Type:    TypeNone,
		Rating:  RatingPG13,
	}
}

func (q Question) IsSentinel() bool {
	return q.UID == SentinelUID && q.Type == TypeNone
}

func (q Question) IsGlobal() bool {
	return q.GuildID == nil
}

// Settings is the per-community configuration. A community without a stored
// row behaves as DefaultSettings.
type Settings struct {
	Rating    RatingPolicy
	AdminOnly bool
}

func DefaultSettings() Settings {
	return Settings{Rating: DefaultPolicy}
}
