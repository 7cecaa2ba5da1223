package service_test

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/require"
)

// twoQuestionQuiz builds a quiz with one single-answer question
// (q1: a1 correct, a2 wrong) and one multi-answer question
// (q2: b1 and b2 correct, b3 wrong).
func twoQuestionQuiz() *model.Quiz {
	quiz := &model.Quiz{
		Title:         "Pointers and Slices",
		PassThreshold: 60,
	}
	quiz.ID = "quiz-1"
	quiz.Questions = []model.Question{
		{
			UUIDBase: model.UUIDBase{ID: "q1"},
			QuizID:   "quiz-1",
			Text:     "What does a nil slice append to?",
			Answers: []model.Answer{
				{UUIDBase: model.UUIDBase{ID: "a1"}, QuestionID: "q1", Text: "a new backing array", IsCorrect: true},
				{UUIDBase: model.UUIDBase{ID: "a2"}, QuestionID: "q1", Text: "a panic"},
			},
		},
		{
			UUIDBase:              model.UUIDBase{ID: "q2"},
			QuizID:                "quiz-1",
			Text:                  "Which of these are reference types?",
			AllowsMultipleAnswers: true,
			Answers: []model.Answer{
				{UUIDBase: model.UUIDBase{ID: "b1"}, QuestionID: "q2", Text: "map", IsCorrect: true},
				{UUIDBase: model.UUIDBase{ID: "b2"}, QuestionID: "q2", Text: "channel", IsCorrect: true},
				{UUIDBase: model.UUIDBase{ID: "b3"}, QuestionID: "q2", Text: "array"},
			},
		},
	}
	return quiz
}

func TestValidateSubmission(t *testing.T) {
	quiz := twoQuestionQuiz()

	tests := []struct {
		name     string
		req      service.SubmitQuizRequest
		wantRule string
	}{
		{
			name: "full valid submission",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
				Answers: []service.QuestionSubmission{
					{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
					{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b2"}},
				},
			},
		},
		{
			name: "unanswered questions are allowed",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
				Answers: []service.QuestionSubmission{
					{QuestionID: "q1", SelectedAnswerIDs: []string{"a2"}},
				},
			},
		},
		{
			name: "empty answer list is allowed",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
			},
		},
		{
			name: "quiz id mismatch",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-2",
				UserID: 7,
			},
			wantRule: util.RuleQuizMismatch,
		},
		{
			name: "duplicate question",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
				Answers: []service.QuestionSubmission{
					{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
					{QuestionID: "q1", SelectedAnswerIDs: []string{"a2"}},
				},
			},
			wantRule: util.RuleDuplicateQuestion,
		},
		{
			name: "question from another quiz",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
				Answers: []service.QuestionSubmission{
					{QuestionID: "q99", SelectedAnswerIDs: []string{"a1"}},
				},
			},
			wantRule: util.RuleUnknownQuestion,
		},
		{
			name: "answer from another question",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
				Answers: []service.QuestionSubmission{
					{QuestionID: "q1", SelectedAnswerIDs: []string{"b1"}},
				},
			},
			wantRule: util.RuleUnknownAnswer,
		},
		{
			name: "multiple selections on a single-answer question",
			req: service.SubmitQuizRequest{
				QuizID: "quiz-1",
				UserID: 7,
				Answers: []service.QuestionSubmission{
					{QuestionID: "q1", SelectedAnswerIDs: []string{"a1", "a2"}},
				},
			},
			wantRule: util.RuleTooManyAnswers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := service.ValidateSubmission(quiz, &tt.req)
			if tt.wantRule == "" {
				require.NoError(t, err)
				require.NotNil(t, validated)
				require.Equal(t, tt.req.QuizID, validated.QuizID)
				require.Equal(t, tt.req.UserID, validated.UserID)
				return
			}

			require.Nil(t, validated)
			ve, ok := util.AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			require.Equal(t, tt.wantRule, ve.Rule)
		})
	}
}

func TestValidateSubmissionReportsOffendingIDs(t *testing.T) {
	quiz := twoQuestionQuiz()

	_, err := service.ValidateSubmission(quiz, &service.SubmitQuizRequest{
		QuizID: "quiz-1",
		UserID: 7,
		Answers: []service.QuestionSubmission{
			{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "a2"}},
		},
	})

	ve, ok := util.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, util.RuleUnknownAnswer, ve.Rule)
	require.Equal(t, "q2", ve.QuestionID)
	require.Equal(t, "a2", ve.AnswerID)
}
