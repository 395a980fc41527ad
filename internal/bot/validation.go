package bot

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	maxQuestionLength    = 280
	maxQuestionUIDLength = 64
)

var (
	errQuestionEmpty   = errors.New("question is required")
	errQuestionTooLong = fmt.Errorf("question must be %d characters or fewer", maxQuestionLength)
)

// questionMessage is the reply for a rejected question text.
func questionMessage(err error) string {
	if errors.Is(err, errQuestionTooLong) {
		return fmt.Sprintf("Question must be %d characters or fewer.", maxQuestionLength)
	}
	return msgQuestionEmpty
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func inputValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("question", func(fl validator.FieldLevel) bool {
			_, err := validateQuestion(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

type addQuestionInput struct {
	Question     string `validate:"question"`
	QuestionType string `validate:"required,oneof=TRUTH DARE"`
	Rating       string `validate:"required,oneof=PG PG-13"`
}

type setRatingInput struct {
	Rating string `validate:"required,oneof=PG PG-13 ALL"`
}

type removeQuestionInput struct {
	QuestionUID string `validate:"required,max=64"`
}

type fieldMessages map[string]map[string]string

var addQuestionMessages = fieldMessages{
	"QuestionType": {"required": "Question type is required.", "oneof": "Question type must be TRUTH or DARE."},
	"Rating":       {"required": "Rating is required.", "oneof": "Rating must be PG or PG-13."},
}

var setRatingMessages = fieldMessages{
	"Rating": {"required": "Rating is required.", "oneof": "Rating must be PG, PG-13 or ALL."},
}

var removeQuestionMessages = fieldMessages{
	"QuestionUID": {"required": "Question UID cannot be empty.", "max": "Question UID is too long."},
}

// validateInput checks req and maps the first failing field to a user-facing
// message, or fallback when none matches.
func validateInput(req any, messages fieldMessages, fallback string) (string, bool) {
	err := inputValidator().Struct(req)
	if err == nil {
		return "", true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if fieldMsgs, ok := messages[verr.Field()]; ok {
				if msg, ok := fieldMsgs[verr.Tag()]; ok {
					return msg, false
				}
			}
		}
	}
	return fallback, false
}

// validateQuestion trims and bounds submitted question text.
func validateQuestion(text string) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", errQuestionEmpty
	}
	if len([]rune(trimmed)) > maxQuestionLength {
		return "", errQuestionTooLong
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

func normalizeChoice(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}
