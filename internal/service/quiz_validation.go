package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

// QuestionSubmission is one answered question in a raw submission.
type QuestionSubmission struct {
	QuestionID        string   `json:"questionId" binding:"required"`
	SelectedAnswerIDs []string `json:"selectedAnswerIds"`
}

// SubmitQuizRequest is the raw, untrusted submission DTO.
// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	QuizID  string               `json:"quizId" binding:"required"`
	UserID  uint                 `json:"userId" binding:"required"`
	Answers []QuestionSubmission `json:"answers"`
}

// ValidatedSubmission is a submission that passed structural validation
// against its quiz: every question belongs to the quiz, every selected
// answer belongs to its question, no duplicates, and single-answer
// questions carry at most one selection. It is safe to grade without
// re-checking membership.
type ValidatedSubmission struct {
	QuizID  string
	UserID  uint
	Answers []QuestionSubmission
}

// ValidateSubmission checks a raw submission against the quiz aggregate,
// failing fast on the first violation. Unanswered questions are allowed;
// unknown ids are rejected rather than ignored so a stale client cannot
// smuggle answers to questions outside the quiz.
func ValidateSubmission(quiz *model.Quiz, req *SubmitQuizRequest) (*ValidatedSubmission, error) {
	if req.QuizID != quiz.ID {
		return nil, &util.ValidationError{Rule: util.RuleQuizMismatch}
	}

	questions := make(map[string]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	seen := make(map[string]bool, len(req.Answers))
	for _, ans := range req.Answers {
		if seen[ans.QuestionID] {
			return nil, &util.ValidationError{Rule: util.RuleDuplicateQuestion, QuestionID: ans.QuestionID}
		}
		seen[ans.QuestionID] = true

		question, ok := questions[ans.QuestionID]
		if !ok {
			return nil, &util.ValidationError{Rule: util.RuleUnknownQuestion, QuestionID: ans.QuestionID}
		}

		answerIDs := make(map[string]bool, len(question.Answers))
		for _, a := range question.Answers {
			answerIDs[a.ID] = true
		}
		for _, selected := range ans.SelectedAnswerIDs {
			if !answerIDs[selected] {
				return nil, &util.ValidationError{Rule: util.RuleUnknownAnswer, QuestionID: ans.QuestionID, AnswerID: selected}
			}
		}

		if !question.AllowsMultipleAnswers && len(ans.SelectedAnswerIDs) > 1 {
			return nil, &util.ValidationError{Rule: util.RuleTooManyAnswers, QuestionID: ans.QuestionID}
		}
	}

	return &ValidatedSubmission{
		QuizID:  req.QuizID,
		UserID:  req.UserID,
		Answers: req.Answers,
	}, nil
}
