package service

import (
	"errors"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuizStore is the quiz read/write boundary consumed by QuizService.
type QuizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id string) (*model.Quiz, error)
	FindByIDWithQuestions(id string) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindByLesson(lessonID string) ([]model.Quiz, error)
	Delete(id string) error
}

// AttemptStore persists graded attempts. SaveAttempt must be atomic:
// either the attempt row and all response rows exist, or none do.
type AttemptStore interface {
	SaveAttempt(attempt *model.QuizAttempt, responses []model.UserQuestionResponse) error
	FindByUserAndQuiz(userID uint, quizID string) (*model.QuizAttempt, error)
}

type QuizService struct {
	Quizzes  QuizStore
	Attempts AttemptStore
}

func NewQuizService(quizzes QuizStore, attempts AttemptStore) *QuizService {
	return &QuizService{Quizzes: quizzes, Attempts: attempts}
}

type CreateAnswerRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
	Order     int    `json:"order"`
}

type CreateQuestionRequest struct {
	Text                  string                `json:"text" binding:"required"`
	AllowsMultipleAnswers bool                  `json:"allowsMultipleAnswers"`
	Order                 int                   `json:"order"`
	Answers               []CreateAnswerRequest `json:"answers" binding:"required,min=1"`
}

type CreateQuizRequest struct {
	Title         string                  `json:"title" binding:"required"`
	Description   string                  `json:"description"`
	LessonID      string                  `json:"lessonId"`
	PassThreshold int                     `json:"passThreshold" binding:"min=0,max=100"`
	Questions     []CreateQuestionRequest `json:"questions" binding:"required,min=1"`
}

func (s *QuizService) CreateQuiz(req CreateQuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		Title:         req.Title,
		Description:   req.Description,
		LessonID:      req.LessonID,
		PassThreshold: req.PassThreshold,
	}
	for _, q := range req.Questions {
		question := model.Question{
			Text:                  q.Text,
			AllowsMultipleAnswers: q.AllowsMultipleAnswers,
			Order:                 q.Order,
		}
		for _, a := range q.Answers {
			question.Answers = append(question.Answers, model.Answer{
				Text:      a.Text,
				IsCorrect: a.IsCorrect,
				Order:     a.Order,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.Quizzes.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes() ([]model.Quiz, error) {
	return s.Quizzes.FindAll()
}

func (s *QuizService) GetQuiz(id string) (*model.Quiz, error) {
	quiz, err := s.Quizzes.FindByIDWithQuestions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) ListQuizzesByLesson(lessonID string) ([]model.Quiz, error) {
	return s.Quizzes.FindByLesson(lessonID)
}

func (s *QuizService) DeleteQuiz(id string) error {
	if _, err := s.Quizzes.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}
	return s.Quizzes.Delete(id)
}

// QuizResult is the client-facing outcome of a submission.
// swagger:model QuizResult
type QuizResult struct {
	AttemptID string           `json:"attemptId"`
	Score     int              `json:"score"`
	Passed    bool             `json:"passed"`
	Breakdown []QuestionResult `json:"breakdown"`
}

// SubmitQuiz validates, grades and persists one submission. Validation
// and grading leave no side effect on failure; persistence is atomic and
// overwrites the user's previous attempt for the quiz, so a failed save
// is safe to retry with the same payload.
func (s *QuizService) SubmitQuiz(req SubmitQuizRequest) (*QuizResult, error) {
	quiz, err := s.Quizzes.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.QuizSubmissions.WithLabelValues("not_found").Inc()
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	validated, err := ValidateSubmission(quiz, &req)
	if err != nil {
		monitoring.QuizSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	graded, err := GradeSubmission(quiz, validated)
	if err != nil {
		monitoring.QuizSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	attempt := &model.QuizAttempt{
		UserID:      validated.UserID,
		QuizID:      quiz.ID,
		Score:       graded.Score,
		Passed:      graded.Passed,
		AttemptedAt: time.Now(),
	}

	responses := make([]model.UserQuestionResponse, 0, len(graded.Breakdown))
	for _, qr := range graded.Breakdown {
		response := model.UserQuestionResponse{
			QuestionID: qr.QuestionID,
			IsCorrect:  qr.IsCorrect,
		}
		if err := response.SetSelectedIDs(qr.SelectedAnswerIDs); err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	if err := s.Attempts.SaveAttempt(attempt, responses); err != nil {
		monitoring.QuizSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	outcome := "failed"
	if graded.Passed {
		outcome = "passed"
	}
	monitoring.QuizSubmissions.WithLabelValues(outcome).Inc()

	logger.Log.Info("quiz attempt recorded",
		zap.String("quizId", quiz.ID),
		zap.Uint("userId", validated.UserID),
		zap.Int("score", graded.Score),
		zap.Bool("passed", graded.Passed),
	)

	return &QuizResult{
		AttemptID: attempt.ID,
		Score:     graded.Score,
		Passed:    graded.Passed,
		Breakdown: graded.Breakdown,
	}, nil
}

// GetUserQuizAttempt returns the user's latest attempt for the quiz, or
// nil when none exists.
func (s *QuizService) GetUserQuizAttempt(userID uint, quizID string) (*model.QuizAttempt, error) {
	return s.Attempts.FindByUserAndQuiz(userID, quizID)
}

// HasUserPassedQuiz reports whether the user's attempt for the quiz
// passed. No attempt means false, not an error.
func (s *QuizService) HasUserPassedQuiz(userID uint, quizID string) (bool, error) {
	attempt, err := s.Attempts.FindByUserAndQuiz(userID, quizID)
	if err != nil {
		return false, err
	}
	if attempt == nil {
		return false, nil
	}
	return attempt.Passed, nil
}
