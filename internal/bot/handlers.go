package bot

import (
	"context"
	"fmt"

	"truth-or-dare/internal/game"

	"go.uber.org/zap"
)

const (
	msgGuildOnly          = "This command can only be used in a server."
	msgAdminOnly          = "Only administrators can use this command."
	msgAddNotAllowed      = "You do not have permission to add questions."
	msgRemoveNotAllowed   = "You do not have permission to remove questions."
	msgQuestionEmpty      = "Question cannot be empty."
	msgInvalidQuestion    = "Invalid question type or rating."
	msgInvalidRating      = "Invalid rating."
	msgMissingAdminOption = "Please choose whether only administrators can add questions."
	msgAddFailed          = "Failed to add question."
	msgSetRatingFailed    = "Failed to set rating."
	msgPermissionsFailed  = "Error setting permissions."
	msgLoadFailed         = "Failed to load questions."
	msgQuestionNotInGuild = "Question not found in this server."
	msgQuestionRemoved    = "Question removed."
)

// Ask serves a random question of questionType under the guild's rating.
func (b *Bot) Ask(ctx context.Context, questionType game.QuestionType, guildID *int64) Reply {
	question := b.selector.Select(ctx, questionType, guildID)
	return questionReply(questionType, question)
}

// Page answers a navigation button. A cursor that does not decode is
// returned as an error and nothing is rendered. rendered is false when the
// catalog could not be loaded and the reply only carries the failure text.
func (b *Bot) Page(ctx context.Context, customID string, guildID *int64) (reply Reply, rendered bool, err error) {
	cursor, err := game.DecodeCursor(customID)
	if err != nil {
		b.metrics.MalformedCursor()
		return Reply{}, false, err
	}
	view, err := game.RenderCursor(ctx, b.questions, cursor, guildID)
	if err != nil {
		b.log.Error("load catalog failed", zap.String("custom_id", customID), zap.Error(err))
		return textReply(msgLoadFailed), false, nil
	}
	return pageReply(view), true, nil
}

func (b *Bot) ListQuestions(ctx context.Context, guildID *int64) Reply {
	return b.firstPage(ctx, game.ScopeDefault, guildID)
}

func (b *Bot) ListCustomQuestions(ctx context.Context, guildID *int64) Reply {
	return b.firstPage(ctx, game.ScopeCustom, guildID)
}

func (b *Bot) firstPage(ctx context.Context, scope game.Scope, guildID *int64) Reply {
	catalog, err := game.Catalog(ctx, b.questions, scope, guildID)
	if err != nil {
		b.log.Error("load catalog failed", zap.String("scope", string(scope)), zap.Error(err))
		return textReply(msgLoadFailed)
	}
	return pageReply(game.RenderPage(1, catalog, scope))
}

func (b *Bot) SetRating(ctx context.Context, caller Caller, rating string) Reply {
	if caller.GuildID == nil {
		return privateReply(msgGuildOnly)
	}
	if !caller.Admin {
		return privateReply(msgAdminOnly)
	}
	input := setRatingInput{Rating: normalizeChoice(rating)}
	if msg, ok := validateInput(input, setRatingMessages, msgInvalidRating); !ok {
		return privateReply(msg)
	}
	policy, _ := game.ParseRatingPolicy(input.Rating)
	if err := b.settings.UpsertRating(ctx, *caller.GuildID, policy); err != nil {
		b.log.Error("set rating failed", zap.Int64("guild_id", *caller.GuildID), zap.Error(err))
		return textReply(msgSetRatingFailed)
	}
	b.recordEvent(ctx, *caller.GuildID, eventRatingSet, EventPayload{UserID: caller.UserID, Rating: string(policy)})
	return textReply(fmt.Sprintf("Rating set to %s.", policy))
}

func (b *Bot) SetQuestionPermissions(ctx context.Context, caller Caller, adminOnly bool, provided bool) Reply {
	if caller.GuildID == nil {
		return privateReply(msgGuildOnly)
	}
	if !caller.Admin {
		return privateReply(msgAdminOnly)
	}
	if !provided {
		return privateReply(msgMissingAdminOption)
	}
	if err := b.settings.UpsertPermission(ctx, *caller.GuildID, adminOnly); err != nil {
		b.log.Error("set permissions failed", zap.Int64("guild_id", *caller.GuildID), zap.Error(err))
		return textReply(msgPermissionsFailed)
	}
	b.recordEvent(ctx, *caller.GuildID, eventPermissionsSet, EventPayload{UserID: caller.UserID, AdminOnly: &adminOnly})
	if adminOnly {
		return textReply("Only administrators can add questions now.")
	}
	return textReply("Anyone can add questions now.")
}

// AddQuestionRequest carries the raw add_question options.
type AddQuestionRequest struct {
	Question     string
	QuestionType string
	Rating       string
}

func (b *Bot) AddQuestion(ctx context.Context, caller Caller, req AddQuestionRequest) Reply {
	if caller.GuildID == nil {
		return privateReply(msgGuildOnly)
	}
	text, err := validateQuestion(req.Question)
	if err != nil {
		return privateReply(questionMessage(err))
	}
	input := addQuestionInput{
		Question:     text,
		QuestionType: normalizeChoice(req.QuestionType),
		Rating:       normalizeChoice(req.Rating),
	}
	if msg, ok := validateInput(input, addQuestionMessages, msgInvalidQuestion); !ok {
		return privateReply(msg)
	}
	if !b.mayEditQuestions(ctx, caller) {
		return privateReply(msgAddNotAllowed)
	}

	rating, _ := game.ParseRating(input.Rating)
	guildID := *caller.GuildID
	saved, err := b.questions.Insert(ctx, game.Question{
		GuildID: &guildID,
		Prompt:  input.Question,
		Type:    game.ParseQuestionType(input.QuestionType),
		Rating:  rating,
	})
	if err != nil {
		b.log.Error("add question failed", zap.Int64("guild_id", guildID), zap.Error(err))
		return textReply(msgAddFailed)
	}
	b.recordEvent(ctx, guildID, eventQuestionAdded, EventPayload{
		UserID:       caller.UserID,
		QuestionUID:  saved.UID,
		QuestionType: string(saved.Type),
		Rating:       string(saved.Rating),
	})
	return textReply(fmt.Sprintf("Question added! UID: %s", saved.UID))
}

// RemoveQuestion deletes one of the guild's own questions. Store failures
// are reported with the underlying error text.
func (b *Bot) RemoveQuestion(ctx context.Context, caller Caller, uid string) Reply {
	if caller.GuildID == nil {
		return privateReply(msgGuildOnly)
	}
	input := removeQuestionInput{QuestionUID: normalizeText(uid)}
	if msg, ok := validateInput(input, removeQuestionMessages, msgQuestionNotInGuild); !ok {
		return privateReply(msg)
	}
	if !b.mayEditQuestions(ctx, caller) {
		return privateReply(msgRemoveNotAllowed)
	}

	guildID := *caller.GuildID
	exists, err := b.questions.ExistsInGuild(ctx, guildID, input.QuestionUID)
	if err != nil {
		return textReply(fmt.Sprintf("Failed to remove question: %v", err))
	}
	if !exists {
		return privateReply(msgQuestionNotInGuild)
	}
	removed, err := b.questions.Delete(ctx, guildID, input.QuestionUID)
	if err != nil {
		return textReply(fmt.Sprintf("Failed to remove question: %v", err))
	}
	if !removed {
		return privateReply(msgQuestionNotInGuild)
	}
	b.recordEvent(ctx, guildID, eventQuestionRemoved, EventPayload{UserID: caller.UserID, QuestionUID: input.QuestionUID})
	return textReply(msgQuestionRemoved)
}

// mayEditQuestions applies the guild's permission policy. A failed lookup
// falls back to the default of letting anyone edit.
func (b *Bot) mayEditQuestions(ctx context.Context, caller Caller) bool {
	if caller.Admin {
		return true
	}
	adminOnly, err := b.settings.GetPermission(ctx, *caller.GuildID)
	if err != nil {
		b.log.Warn("permission lookup failed", zap.Int64("guild_id", *caller.GuildID), zap.Error(err))
		return true
	}
	return !adminOnly
}
