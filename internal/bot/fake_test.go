package bot

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"truth-or-dare/internal/game"

	"github.com/bwmarrin/discordgo"
)

type fakeQuestions struct {
	mu        sync.Mutex
	questions []game.Question
	nextUID   int
	failWith  error
	draws     int
}

func (f *fakeQuestions) visible(q game.Question, guildID *int64) bool {
	if q.GuildID == nil {
		return true
	}
	return guildID != nil && *q.GuildID == *guildID
}

func (f *fakeQuestions) RandomQuestion(_ context.Context, questionType game.QuestionType, rating game.Rating, guildID *int64) (game.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draws++
	if f.failWith != nil {
		return game.Question{}, f.failWith
	}
	for _, q := range f.questions {
		if q.Type == questionType && q.Rating == rating && f.visible(q, guildID) {
			return q, nil
		}
	}
	return game.Question{}, game.ErrQuestionNotFound
}

func (f *fakeQuestions) ListVisible(_ context.Context, guildID *int64) ([]game.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []game.Question
	for _, q := range f.questions {
		if f.visible(q, guildID) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) ListCustom(_ context.Context, guildID *int64) ([]game.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []game.Question
	for _, q := range f.questions {
		if guildID != nil && q.GuildID != nil && *q.GuildID == *guildID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) Insert(_ context.Context, q game.Question) (game.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return game.Question{}, f.failWith
	}
	f.nextUID++
	q.UID = "uid-" + strconv.Itoa(f.nextUID)
	f.questions = append(f.questions, q)
	return q, nil
}

func (f *fakeQuestions) Delete(_ context.Context, guildID int64, uid string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	for i, q := range f.questions {
		if q.UID == uid && q.GuildID != nil && *q.GuildID == guildID {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuestions) ExistsInGuild(_ context.Context, guildID int64, uid string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, q := range f.questions {
		if q.UID == uid && q.GuildID != nil && *q.GuildID == guildID {
			return true, nil
		}
	}
	return false, nil
}

type fakeSettings struct {
	mu          sync.Mutex
	ratings     map[int64]game.RatingPolicy
	permissions map[int64]bool
	failWith    error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{ratings: map[int64]game.RatingPolicy{}, permissions: map[int64]bool{}}
}

func (f *fakeSettings) GetRating(_ context.Context, guildID int64) (game.RatingPolicy, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", false, f.failWith
	}
	policy, ok := f.ratings[guildID]
	return policy, ok, nil
}

func (f *fakeSettings) UpsertRating(_ context.Context, guildID int64, policy game.RatingPolicy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.ratings[guildID] = policy
	return nil
}

func (f *fakeSettings) GetPermission(_ context.Context, guildID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	return f.permissions[guildID], nil
}

func (f *fakeSettings) UpsertPermission(_ context.Context, guildID int64, adminOnly bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.permissions[guildID] = adminOnly
	return nil
}

type recordedEvent struct {
	GuildID int64
	Type    string
	Payload EventPayload
}

type fakeEvents struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEvents) Record(_ context.Context, guildID int64, eventType string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := payload.(EventPayload)
	if !ok {
		return errors.New("unexpected payload")
	}
	f.events = append(f.events, recordedEvent{GuildID: guildID, Type: eventType, Payload: p})
	return nil
}

type fakeDiscord struct {
	responses []*discordgo.InteractionResponse
	sent      []*discordgo.MessageSend
	deleted   []string
	commands  []*discordgo.ApplicationCommand
	guildID   string
}

func (f *fakeDiscord) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeDiscord) ChannelMessageSendComplex(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, data)
	return &discordgo.Message{}, nil
}

func (f *fakeDiscord) ChannelMessageDelete(_, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeDiscord) ApplicationCommandBulkOverwrite(_, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.guildID = guildID
	f.commands = commands
	return commands, nil
}

func guild(id int64) *int64 { return &id }

func globalQuestion(uid, prompt string, questionType game.QuestionType, rating game.Rating) game.Question {
	return game.Question{UID: uid, Prompt: prompt, Type: questionType, Rating: rating}
}

type testBot struct {
	*Bot
	questions *fakeQuestions
	settings  *fakeSettings
	events    *fakeEvents
}

func newTestBot(questions ...game.Question) testBot {
	store := &fakeQuestions{questions: questions}
	settings := newFakeSettings()
	events := &fakeEvents{}
	return testBot{
		Bot:       New(store, settings, WithEvents(events)),
		questions: store,
		settings:  settings,
		events:    events,
	}
}
