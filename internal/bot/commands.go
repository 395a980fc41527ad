package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	commandTruth                  = "truth"
	commandDare                   = "dare"
	commandSetRating              = "set_rating"
	commandAddQuestion            = "add_question"
	commandRemoveQuestion         = "remove_question"
	commandListQuestions          = "list_questions"
	commandListCustomQuestions    = "list_custom_questions"
	commandSetQuestionPermissions = "set_question_permissions"

	optionRating       = "rating"
	optionQuestion     = "question"
	optionQuestionType = "question_type"
	optionQuestionUID  = "question_uid"
	optionAdmin        = "admin"
)

var adminPermission int64 = discordgo.PermissionAdministrator

func ratingChoices(withAll bool) []*discordgo.ApplicationCommandOptionChoice {
	choices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "PG", Value: "PG"},
		{Name: "PG-13", Value: "PG-13"},
	}
	if withAll {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: "ALL", Value: "ALL"})
	}
	return choices
}

// Commands returns the slash commands registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: commandTruth, Description: "Get a truth question"},
		{Name: commandDare, Description: "Get a dare"},
		{
			Name:                     commandSetRating,
			Description:              "Set the content rating for this server",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionRating,
				Description: "Rating to serve",
				Required:    true,
				Choices:     ratingChoices(true),
			}},
		},
		{
			Name:        commandAddQuestion,
			Description: "Add a question to this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionQuestion,
					Description: "The question text",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionQuestionType,
					Description: "Truth or dare",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Truth", Value: "TRUTH"},
						{Name: "Dare", Value: "DARE"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionRating,
					Description: "Rating of the question",
					Required:    true,
					Choices:     ratingChoices(false),
				},
			},
		},
		{
			Name:        commandRemoveQuestion,
			Description: "Remove a question added to this server",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionQuestionUID,
				Description: "UID shown by /list_custom_questions",
				Required:    true,
			}},
		},
		{Name: commandListQuestions, Description: "List every question available here"},
		{Name: commandListCustomQuestions, Description: "List questions added to this server"},
		{
			Name:                     commandSetQuestionPermissions,
			Description:              "Choose who may add questions",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        optionAdmin,
				Description: "Only administrators may add questions",
				Required:    true,
			}},
		},
	}
}

// Options holds the values of a command's top-level options by name.
type Options map[string]any

func OptionsFromData(data []*discordgo.ApplicationCommandInteractionDataOption) Options {
	opts := make(Options, len(data))
	for _, opt := range data {
		if opt == nil {
			continue
		}
		opts[strings.ToLower(opt.Name)] = opt.Value
	}
	return opts
}

func (o Options) String(name string) string {
	value, _ := o[name].(string)
	return value
}

// Bool reports the option value and whether it was supplied at all.
func (o Options) Bool(name string) (bool, bool) {
	value, ok := o[name].(bool)
	return value, ok
}
