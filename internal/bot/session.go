package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// discordAPI is the slice of *discordgo.Session the gateway handlers use.
type discordAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var _ discordAPI = (*discordgo.Session)(nil)

// Session connects a Bot to the Discord gateway.
type Session struct {
	dg      *discordgo.Session
	bot     *Bot
	guildID string
	log     *zap.Logger
	now     func() time.Time
}

// NewSession prepares a gateway session. guildID scopes command registration
// to one server; empty registers commands globally.
func NewSession(token, guildID string, bot *Bot, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
	return &Session{dg: dg, bot: bot, guildID: guildID, log: log, now: time.Now}, nil
}

// Run opens the gateway connection and blocks until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.dg.AddHandler(func(dg *discordgo.Session, r *discordgo.Ready) {
		s.onReady(dg, r)
	})
	s.dg.AddHandler(func(dg *discordgo.Session, m *discordgo.MessageCreate) {
		s.onMessageCreate(ctx, dg, m)
	})
	s.dg.AddHandler(func(dg *discordgo.Session, i *discordgo.InteractionCreate) {
		s.onInteractionCreate(ctx, dg, i)
	})

	if err := s.dg.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	s.log.Info("discord session open")

	<-ctx.Done()
	if err := s.dg.Close(); err != nil {
		return fmt.Errorf("discord close: %w", err)
	}
	s.log.Info("discord session closed")
	return nil
}

func (s *Session) onReady(api discordAPI, r *discordgo.Ready) {
	if r == nil || r.User == nil {
		return
	}
	s.log.Info("connected", zap.String("user", r.User.Username))
	if _, err := api.ApplicationCommandBulkOverwrite(r.User.ID, s.guildID, Commands()); err != nil {
		s.log.Error("register commands failed", zap.Error(err))
	}
}

func (s *Session) onMessageCreate(ctx context.Context, api discordAPI, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	reply, ok := s.bot.HandleMessage(ctx, m.Content, ParseGuildID(m.GuildID))
	if !ok {
		return
	}
	if _, err := api.ChannelMessageSendComplex(m.ChannelID, MessageSend(reply, s.now())); err != nil {
		s.log.Error("send message failed", zap.String("channel_id", m.ChannelID), zap.Error(err))
	}
}

func (s *Session) onInteractionCreate(ctx context.Context, api discordAPI, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil {
		return
	}
	caller := CallerFromInteraction(i.Interaction)

	var reply Reply
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		var deleteSource bool
		var err error
		reply, deleteSource, err = s.bot.HandleComponent(ctx, customID, caller)
		if err != nil {
			return
		}
		if deleteSource && i.Message != nil {
			if err := api.ChannelMessageDelete(i.Message.ChannelID, i.Message.ID); err != nil {
				s.log.Warn("delete source message failed", zap.String("message_id", i.Message.ID), zap.Error(err))
			}
		}
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		var ok bool
		reply, ok = s.bot.HandleCommand(ctx, data.Name, OptionsFromData(data.Options), caller)
		if !ok {
			return
		}
	default:
		return
	}

	if err := api.InteractionRespond(i.Interaction, InteractionResponse(reply, s.now())); err != nil {
		s.log.Error("respond to interaction failed", zap.String("interaction_id", i.ID), zap.Error(err))
	}
}

// CallerFromInteraction extracts the guild, user and administrator flag.
// Interactions from direct messages carry no guild and no member.
func CallerFromInteraction(i *discordgo.Interaction) Caller {
	caller := Caller{GuildID: ParseGuildID(i.GuildID)}
	switch {
	case i.Member != nil:
		if i.Member.User != nil {
			caller.UserID = i.Member.User.ID
		}
		caller.Admin = i.Member.Permissions&discordgo.PermissionAdministrator != 0
	case i.User != nil:
		caller.UserID = i.User.ID
	}
	return caller
}
