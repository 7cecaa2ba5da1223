package util

import (
	"errors"
	"fmt"
)

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrQuizNotFound     = errors.New("quiz not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrInvalidQuizState = errors.New("quiz has no questions")

	ErrReviewNotFound    = errors.New("review not found")
	ErrReviewExists      = errors.New("review already exists for this course")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrResourceNotFound  = errors.New("lesson resource not found")
	ErrInvalidDateRange  = errors.New("invalid date range filter")

	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Validation rule names carried by ValidationError so clients can show
// an actionable message.
const (
	RuleQuizMismatch      = "quiz_id_mismatch"
	RuleDuplicateQuestion = "duplicate_question"
	RuleUnknownQuestion   = "unknown_question"
	RuleUnknownAnswer     = "unknown_answer"
	RuleTooManyAnswers    = "too_many_answers"
)

// ValidationError reports the first structural violation found in a quiz
// submission, naming the violated rule and the offending ids.
type ValidationError struct {
	Rule       string `json:"rule"`
	QuestionID string `json:"questionId,omitempty"`
	AnswerID   string `json:"answerId,omitempty"`
}

func (e *ValidationError) Error() string {
	switch {
	case e.AnswerID != "":
		return fmt.Sprintf("invalid quiz submission: %s (question %s, answer %s)", e.Rule, e.QuestionID, e.AnswerID)
	case e.QuestionID != "":
		return fmt.Sprintf("invalid quiz submission: %s (question %s)", e.Rule, e.QuestionID)
	}
	return fmt.Sprintf("invalid quiz submission: %s", e.Rule)
}

// AsValidationError unwraps err as a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
