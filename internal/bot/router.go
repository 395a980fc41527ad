package bot

import (
	"context"
	"strings"

	"truth-or-dare/internal/game"

	"go.uber.org/zap"
)

const (
	componentTruth = "truth"
	componentDare  = "dare"

	msgUnknownComponent = "Uh, you shouldn't have seen this..."
)

// ParseTrigger maps a chat message to the question type it asks for. Only
// the exact prefixed words count, surrounding whitespace aside.
func ParseTrigger(content, prefix string) (game.QuestionType, bool) {
	switch strings.TrimSpace(content) {
	case prefix + "truth":
		return game.TypeTruth, true
	case prefix + "dare":
		return game.TypeDare, true
	}
	return game.TypeNone, false
}

// HandleMessage answers a "!truth" or "!dare" chat message. ok is false for
// any other message.
func (b *Bot) HandleMessage(ctx context.Context, content string, guildID *int64) (Reply, bool) {
	questionType, ok := ParseTrigger(content, b.prefix)
	if !ok {
		return Reply{}, false
	}
	b.metrics.Interaction("message")
	return b.Ask(ctx, questionType, guildID), true
}

// HandleComponent answers a button press. deleteSource reports whether the
// message carrying the button should be removed, which is the case for
// page navigation that rendered. A malformed cursor yields an error and no
// reply.
func (b *Bot) HandleComponent(ctx context.Context, customID string, caller Caller) (reply Reply, deleteSource bool, err error) {
	b.metrics.Interaction("component")
	switch {
	case customID == componentTruth:
		return b.Ask(ctx, game.TypeTruth, caller.GuildID), false, nil
	case customID == componentDare:
		return b.Ask(ctx, game.TypeDare, caller.GuildID), false, nil
	case game.IsCursor(customID):
		reply, rendered, err := b.Page(ctx, customID, caller.GuildID)
		if err != nil {
			b.log.Warn("malformed cursor", zap.String("custom_id", customID), zap.Error(err))
			return Reply{}, false, err
		}
		return reply, rendered, nil
	default:
		return textReply(msgUnknownComponent), false, nil
	}
}

// HandleCommand dispatches a slash command by name. ok is false for
// commands this bot does not own.
func (b *Bot) HandleCommand(ctx context.Context, name string, opts Options, caller Caller) (Reply, bool) {
	b.metrics.Interaction("command")
	switch name {
	case commandTruth:
		return b.Ask(ctx, game.TypeTruth, caller.GuildID), true
	case commandDare:
		return b.Ask(ctx, game.TypeDare, caller.GuildID), true
	case commandSetRating:
		return b.SetRating(ctx, caller, opts.String(optionRating)), true
	case commandAddQuestion:
		return b.AddQuestion(ctx, caller, AddQuestionRequest{
			Question:     opts.String(optionQuestion),
			QuestionType: opts.String(optionQuestionType),
			Rating:       opts.String(optionRating),
		}), true
	case commandRemoveQuestion:
		return b.RemoveQuestion(ctx, caller, opts.String(optionQuestionUID)), true
	case commandListQuestions:
		return b.ListQuestions(ctx, caller.GuildID), true
	case commandListCustomQuestions:
		return b.ListCustomQuestions(ctx, caller.GuildID), true
	case commandSetQuestionPermissions:
		adminOnly, provided := opts.Bool(optionAdmin)
		return b.SetQuestionPermissions(ctx, caller, adminOnly, provided), true
	}
	return Reply{}, false
}
