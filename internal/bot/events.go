package bot

const (
	eventQuestionAdded   = "question_added"
	eventQuestionRemoved = "question_removed"
	eventRatingSet       = "rating_set"
	eventPermissionsSet  = "permissions_set"
)

type EventPayload struct {
	UserID       string `json:"user_id,omitempty"`
	QuestionUID  string `json:"question_uid,omitempty"`
	QuestionType string `json:"question_type,omitempty"`
	Rating       string `json:"rating,omitempty"`
	AdminOnly    *bool  `json:"admin_only,omitempty"`
}
