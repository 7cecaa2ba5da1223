package model

import (
	"encoding/json"
	"time"
)

// QuizAttempt is the graded record of one user's submission for a quiz.
// The (user_id, quiz_id) pair is unique: resubmitting overwrites the
// previous attempt together with its responses.
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID      uint                   `gorm:"uniqueIndex:idx_user_quiz;type:bigint unsigned;not null" json:"userId"`
	QuizID      string                 `gorm:"uniqueIndex:idx_user_quiz;type:varchar(36);not null" json:"quizId"`
	Score       int                    `gorm:"not null" json:"score"` // integer percentage 0-100
	Passed      bool                   `gorm:"default:false" json:"passed"`
	AttemptedAt time.Time              `json:"attemptedAt"`
	Responses   []UserQuestionResponse `gorm:"foreignKey:AttemptID" json:"responses,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// UserQuestionResponse records the answer ids a user selected for one
// question and whether that selection was graded correct. Rows are
// immutable after creation; resubmission replaces the whole set.
// swagger:model UserQuestionResponse
type UserQuestionResponse struct {
	UUIDBase
	AttemptID         string          `gorm:"index;type:varchar(36);not null" json:"attemptId"`
	QuestionID        string          `gorm:"index;type:varchar(36);not null" json:"questionId"`
	SelectedAnswerIDs json.RawMessage `gorm:"type:json" json:"selectedAnswerIds"` // JSON array of answer ids
	IsCorrect         bool            `gorm:"default:false" json:"isCorrect"`
}

func (UserQuestionResponse) TableName() string {
	return "user_question_responses"
}

// SelectedIDs decodes the stored answer id array.
func (r *UserQuestionResponse) SelectedIDs() ([]string, error) {
	if len(r.SelectedAnswerIDs) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(r.SelectedAnswerIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetSelectedIDs encodes the answer id array for storage.
func (r *UserQuestionResponse) SetSelectedIDs(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	r.SelectedAnswerIDs = raw
	return nil
}
