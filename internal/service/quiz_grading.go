package service

import (
	"math"

	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	QuestionID        string   `json:"questionId"`
	SelectedAnswerIDs []string `json:"selectedAnswerIds"`
	IsCorrect         bool     `json:"isCorrect"`
}

// GradedResult holds the aggregate score with the full per-question
// breakdown.
type GradedResult struct {
	Score     int              `json:"score"`
	Passed    bool             `json:"passed"`
	Breakdown []QuestionResult `json:"breakdown"`
}

// GradeSubmission grades a validated submission against the quiz. Every
// question of the quiz is graded, not only the answered ones: a question
// is correct iff the selected answer set exactly equals its correct
// answer set, so partial multi-select answers and unanswered questions
// score zero. The quiz entities are never mutated.
func GradeSubmission(quiz *model.Quiz, sub *ValidatedSubmission) (*GradedResult, error) {
	if len(quiz.Questions) == 0 {
		return nil, util.ErrInvalidQuizState
	}

	selectedByQuestion := make(map[string][]string, len(sub.Answers))
	for _, ans := range sub.Answers {
		selectedByQuestion[ans.QuestionID] = ans.SelectedAnswerIDs
	}

	correct := 0
	breakdown := make([]QuestionResult, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		selected := selectedByQuestion[question.ID]

		isCorrect := sameIDSet(selected, question.CorrectAnswerIDs())
		if isCorrect {
			correct++
		}

		breakdown = append(breakdown, QuestionResult{
			QuestionID:        question.ID,
			SelectedAnswerIDs: selected,
			IsCorrect:         isCorrect,
		})
	}

	score := roundedPercentage(correct, len(quiz.Questions))

	return &GradedResult{
		Score:     score,
		Passed:    score >= quiz.PassThreshold,
		Breakdown: breakdown,
	}, nil
}

// roundedPercentage computes correct/total as an integer percentage,
// round half up.
func roundedPercentage(correct, total int) int {
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// sameIDSet reports whether the two id slices contain exactly the same
// set of ids, ignoring order and repeats. An empty selection only
// matches an empty correct set.
func sameIDSet(selected, correct []string) bool {
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}
	correctSet := make(map[string]bool, len(correct))
	for _, id := range correct {
		correctSet[id] = true
	}
	if len(selectedSet) != len(correctSet) {
		return false
	}
	for id := range selectedSet {
		if !correctSet[id] {
			return false
		}
	}
	return true
}
