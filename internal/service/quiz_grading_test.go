package service_test

import (
	"fmt"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func submission(quizID string, answers ...service.QuestionSubmission) *service.ValidatedSubmission {
	return &service.ValidatedSubmission{QuizID: quizID, UserID: 7, Answers: answers}
}

func TestGradeSubmission(t *testing.T) {
	tests := []struct {
		name       string
		answers    []service.QuestionSubmission
		wantScore  int
		wantPassed bool
	}{
		{
			name: "all correct",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b2"}},
			},
			wantScore:  100,
			wantPassed: true,
		},
		{
			name: "multi-select order does not matter",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b2", "b1"}},
			},
			wantScore:  100,
			wantPassed: true,
		},
		{
			name: "all wrong",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a2"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1"}},
			},
			wantScore:  0,
			wantPassed: false,
		},
		{
			name: "partial multi-select scores zero for that question",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1"}},
			},
			wantScore:  50,
			wantPassed: false,
		},
		{
			name: "superset multi-select scores zero for that question",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b2", "b3"}},
			},
			wantScore:  50,
			wantPassed: false,
		},
		{
			name: "unanswered question scores zero",
			answers: []service.QuestionSubmission{
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b2"}},
			},
			wantScore:  50,
			wantPassed: false,
		},
		{
			name:       "empty submission scores zero",
			answers:    nil,
			wantScore:  0,
			wantPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := twoQuestionQuiz()
			result, err := service.GradeSubmission(quiz, submission(quiz.ID, tt.answers...))
			require.NoError(t, err)
			require.Equal(t, tt.wantScore, result.Score)
			require.Equal(t, tt.wantPassed, result.Passed)
			require.Len(t, result.Breakdown, len(quiz.Questions))
		})
	}
}

func TestGradeSubmissionScoreOnThresholdPasses(t *testing.T) {
	quiz := twoQuestionQuiz()
	quiz.PassThreshold = 50

	result, err := service.GradeSubmission(quiz, submission(quiz.ID,
		service.QuestionSubmission{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
	))
	require.NoError(t, err)
	require.Equal(t, 50, result.Score)
	require.True(t, result.Passed)
}

func TestGradeSubmissionRepeatedSelectionIsNotExtraCredit(t *testing.T) {
	quiz := twoQuestionQuiz()

	// Selecting b1 twice must not count as the {b1, b2} correct set.
	result, err := service.GradeSubmission(quiz, submission(quiz.ID,
		service.QuestionSubmission{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b1"}},
	))
	require.NoError(t, err)
	require.Equal(t, 0, result.Score)
	require.False(t, result.Breakdown[1].IsCorrect)
}

func TestGradeSubmissionRoundsHalfUp(t *testing.T) {
	tests := []struct {
		questions int
		correct   int
		want      int
	}{
		{questions: 3, correct: 1, want: 33},
		{questions: 3, correct: 2, want: 67},
		{questions: 8, correct: 3, want: 38}, // 37.5 rounds up
		{questions: 7, correct: 2, want: 29},
		{questions: 6, correct: 1, want: 17},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.correct, tt.questions), func(t *testing.T) {
			quiz := &model.Quiz{PassThreshold: 60}
			quiz.ID = "quiz-n"

			var answers []service.QuestionSubmission
			for i := 0; i < tt.questions; i++ {
				qid := fmt.Sprintf("q%d", i)
				right := fmt.Sprintf("%s-right", qid)
				wrong := fmt.Sprintf("%s-wrong", qid)
				quiz.Questions = append(quiz.Questions, model.Question{
					UUIDBase: model.UUIDBase{ID: qid},
					QuizID:   quiz.ID,
					Answers: []model.Answer{
						{UUIDBase: model.UUIDBase{ID: right}, QuestionID: qid, IsCorrect: true},
						{UUIDBase: model.UUIDBase{ID: wrong}, QuestionID: qid},
					},
				})

				selected := wrong
				if i < tt.correct {
					selected = right
				}
				answers = append(answers, service.QuestionSubmission{
					QuestionID:        qid,
					SelectedAnswerIDs: []string{selected},
				})
			}

			result, err := service.GradeSubmission(quiz, submission(quiz.ID, answers...))
			require.NoError(t, err)
			require.Equal(t, tt.want, result.Score)
		})
	}
}

func TestGradeSubmissionRejectsQuizWithoutQuestions(t *testing.T) {
	quiz := &model.Quiz{PassThreshold: 60}
	quiz.ID = "empty-quiz"

	result, err := service.GradeSubmission(quiz, submission(quiz.ID))
	require.ErrorIs(t, err, util.ErrInvalidQuizState)
	require.Nil(t, result)
}

func TestGradeSubmissionDoesNotMutateQuiz(t *testing.T) {
	quiz := twoQuestionQuiz()
	before := len(quiz.Questions[1].Answers)

	_, err := service.GradeSubmission(quiz, submission(quiz.ID,
		service.QuestionSubmission{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
	))
	require.NoError(t, err)
	require.Len(t, quiz.Questions[1].Answers, before)
	require.True(t, quiz.Questions[0].Answers[0].IsCorrect)
}
