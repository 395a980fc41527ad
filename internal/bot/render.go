package bot

import (
	"time"

	"truth-or-dare/internal/game"

	"github.com/bwmarrin/discordgo"
)

func questionButtons() discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Truth", Style: discordgo.PrimaryButton, CustomID: componentTruth},
		discordgo.Button{Label: "Dare", Style: discordgo.DangerButton, CustomID: componentDare},
	}}
}

func pageButtons(view *game.PageView) discordgo.ActionsRow {
	buttons := make([]discordgo.MessageComponent, 0, len(view.Controls))
	for _, control := range view.Controls {
		buttons = append(buttons, discordgo.Button{
			Label:    control.Label,
			Style:    discordgo.SecondaryButton,
			CustomID: control.CustomID,
		})
	}
	return discordgo.ActionsRow{Components: buttons}
}

// messageParts converts a reply into the embeds and components shared by
// interaction responses and plain channel messages.
func messageParts(reply Reply, now time.Time) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	switch {
	case reply.Question != nil:
		embed := &discordgo.MessageEmbed{
			Title:       reply.Question.Title,
			Description: reply.Question.Description,
			Footer:      &discordgo.MessageEmbedFooter{Text: reply.Question.Footer},
			Timestamp:   now.UTC().Format(time.RFC3339),
		}
		return []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{questionButtons()}
	case reply.Page != nil:
		embed := &discordgo.MessageEmbed{
			Title:       reply.Page.Title,
			Description: reply.Page.Body(),
			Footer:      &discordgo.MessageEmbedFooter{Text: reply.Page.Caption},
		}
		return []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{pageButtons(reply.Page)}
	}
	return nil, nil
}

func InteractionResponse(reply Reply, now time.Time) *discordgo.InteractionResponse {
	embeds, components := messageParts(reply, now)
	data := &discordgo.InteractionResponseData{
		Content:    reply.Content,
		Embeds:     embeds,
		Components: components,
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

func MessageSend(reply Reply, now time.Time) *discordgo.MessageSend {
	embeds, components := messageParts(reply, now)
	return &discordgo.MessageSend{
		Content:    reply.Content,
		Embeds:     embeds,
		Components: components,
	}
}
