package service_test

import (
	"errors"
	"os"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fakeQuizStore struct {
	quizzes map[string]*model.Quiz
}

func newFakeQuizStore(quizzes ...*model.Quiz) *fakeQuizStore {
	s := &fakeQuizStore{quizzes: make(map[string]*model.Quiz)}
	for _, q := range quizzes {
		s.quizzes[q.ID] = q
	}
	return s
}

func (s *fakeQuizStore) Create(quiz *model.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = model.GenerateUUID()
	}
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *fakeQuizStore) FindByID(id string) (*model.Quiz, error) {
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (s *fakeQuizStore) FindByIDWithQuestions(id string) (*model.Quiz, error) {
	return s.FindByID(id)
}

func (s *fakeQuizStore) FindAll() ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range s.quizzes {
		out = append(out, *q)
	}
	return out, nil
}

func (s *fakeQuizStore) FindByLesson(lessonID string) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range s.quizzes {
		if q.LessonID == lessonID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *fakeQuizStore) Delete(id string) error {
	delete(s.quizzes, id)
	return nil
}

type attemptKey struct {
	userID uint
	quizID string
}

type savedAttempt struct {
	attempt   model.QuizAttempt
	responses []model.UserQuestionResponse
}

type fakeAttemptStore struct {
	attempts map[attemptKey]*savedAttempt
	saveErr  error
	saves    int
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: make(map[attemptKey]*savedAttempt)}
}

func (s *fakeAttemptStore) SaveAttempt(attempt *model.QuizAttempt, responses []model.UserQuestionResponse) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++

	key := attemptKey{userID: attempt.UserID, quizID: attempt.QuizID}
	if existing, ok := s.attempts[key]; ok {
		attempt.ID = existing.attempt.ID
	} else if attempt.ID == "" {
		attempt.ID = model.GenerateUUID()
	}

	for i := range responses {
		responses[i].AttemptID = attempt.ID
	}
	s.attempts[key] = &savedAttempt{attempt: *attempt, responses: responses}
	return nil
}

func (s *fakeAttemptStore) FindByUserAndQuiz(userID uint, quizID string) (*model.QuizAttempt, error) {
	saved, ok := s.attempts[attemptKey{userID: userID, quizID: quizID}]
	if !ok {
		return nil, nil
	}
	attempt := saved.attempt
	attempt.Responses = saved.responses
	return &attempt, nil
}

func passingSubmission() service.SubmitQuizRequest {
	return service.SubmitQuizRequest{
		QuizID: "quiz-1",
		UserID: 7,
		Answers: []service.QuestionSubmission{
			{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
			{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b2"}},
		},
	}
}

func TestSubmitQuizPersistsGradedAttempt(t *testing.T) {
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), attempts)

	result, err := svc.SubmitQuiz(passingSubmission())
	require.NoError(t, err)
	require.NotEmpty(t, result.AttemptID)
	require.Equal(t, 100, result.Score)
	require.True(t, result.Passed)

	saved, err := svc.GetUserQuizAttempt(7, "quiz-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, result.AttemptID, saved.ID)
	require.Equal(t, result.Score, saved.Score)
	require.Equal(t, result.Passed, saved.Passed)
	require.False(t, saved.AttemptedAt.IsZero())

	// One response per quiz question, answered or not.
	require.Len(t, saved.Responses, 2)
	for _, r := range saved.Responses {
		require.Equal(t, saved.ID, r.AttemptID)
	}
	ids, err := saved.Responses[0].SelectedIDs()
	require.NoError(t, err)
	require.Equal(t, []string{"a1"}, ids)
}

func TestSubmitQuizStoredScoreMatchesRecomputedResponses(t *testing.T) {
	// A stored attempt must stay derivable from its own response rows:
	// regrading the persisted selections yields the persisted score,
	// passed flag and per-question correctness.
	cases := []struct {
		name    string
		answers []service.QuestionSubmission
	}{
		{
			name: "all correct",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b2"}},
			},
		},
		{
			name: "half correct",
			answers: []service.QuestionSubmission{
				{QuestionID: "q1", SelectedAnswerIDs: []string{"a1"}},
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1"}},
			},
		},
		{
			name: "duplicate selection",
			answers: []service.QuestionSubmission{
				{QuestionID: "q2", SelectedAnswerIDs: []string{"b1", "b1"}},
			},
		},
		{
			name:    "empty submission",
			answers: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := twoQuestionQuiz()
			svc := service.NewQuizService(newFakeQuizStore(quiz), newFakeAttemptStore())

			result, err := svc.SubmitQuiz(service.SubmitQuizRequest{
				QuizID:  "quiz-1",
				UserID:  7,
				Answers: tc.answers,
			})
			require.NoError(t, err)

			saved, err := svc.GetUserQuizAttempt(7, "quiz-1")
			require.NoError(t, err)
			require.Len(t, saved.Responses, len(quiz.Questions))

			// Rebuild a submission from nothing but the stored rows.
			rebuilt := &service.ValidatedSubmission{QuizID: saved.QuizID, UserID: saved.UserID}
			storedCorrect := make(map[string]bool, len(saved.Responses))
			for _, r := range saved.Responses {
				ids, err := r.SelectedIDs()
				require.NoError(t, err)
				rebuilt.Answers = append(rebuilt.Answers, service.QuestionSubmission{
					QuestionID:        r.QuestionID,
					SelectedAnswerIDs: ids,
				})
				storedCorrect[r.QuestionID] = r.IsCorrect
			}

			regraded, err := service.GradeSubmission(quiz, rebuilt)
			require.NoError(t, err)

			require.Equal(t, saved.Score, regraded.Score)
			require.Equal(t, saved.Passed, regraded.Passed)
			require.Equal(t, result.Score, regraded.Score)
			for _, qr := range regraded.Breakdown {
				require.Equal(t, storedCorrect[qr.QuestionID], qr.IsCorrect, "question %s", qr.QuestionID)
			}
		})
	}
}

func TestSubmitQuizOverwritesPreviousAttempt(t *testing.T) {
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), attempts)

	first, err := svc.SubmitQuiz(service.SubmitQuizRequest{
		QuizID: "quiz-1",
		UserID: 7,
		Answers: []service.QuestionSubmission{
			{QuestionID: "q1", SelectedAnswerIDs: []string{"a2"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0, first.Score)

	second, err := svc.SubmitQuiz(passingSubmission())
	require.NoError(t, err)
	require.Equal(t, 100, second.Score)

	require.Len(t, attempts.attempts, 1)
	saved, err := svc.GetUserQuizAttempt(7, "quiz-1")
	require.NoError(t, err)
	require.Equal(t, 100, saved.Score)
	require.True(t, saved.Passed)
}

func TestSubmitQuizAttemptsByDifferentUsersCoexist(t *testing.T) {
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), attempts)

	req := passingSubmission()
	_, err := svc.SubmitQuiz(req)
	require.NoError(t, err)

	req.UserID = 8
	_, err = svc.SubmitQuiz(req)
	require.NoError(t, err)

	require.Len(t, attempts.attempts, 2)
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(), attempts)

	result, err := svc.SubmitQuiz(passingSubmission())
	require.ErrorIs(t, err, util.ErrQuizNotFound)
	require.Nil(t, result)
	require.Zero(t, attempts.saves)
}

func TestSubmitQuizValidationFailureLeavesNoAttempt(t *testing.T) {
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), attempts)

	req := passingSubmission()
	req.Answers[0].SelectedAnswerIDs = []string{"a1", "a2"}

	result, err := svc.SubmitQuiz(req)
	require.Nil(t, result)
	ve, ok := util.AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, util.RuleTooManyAnswers, ve.Rule)
	require.Zero(t, attempts.saves)
}

func TestSubmitQuizQuizWithoutQuestions(t *testing.T) {
	quiz := &model.Quiz{PassThreshold: 60}
	quiz.ID = "quiz-1"
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(quiz), attempts)

	result, err := svc.SubmitQuiz(service.SubmitQuizRequest{QuizID: "quiz-1", UserID: 7})
	require.ErrorIs(t, err, util.ErrInvalidQuizState)
	require.Nil(t, result)
	require.Zero(t, attempts.saves)
}

func TestSubmitQuizSurfacesPersistenceFailure(t *testing.T) {
	attempts := newFakeAttemptStore()
	attempts.saveErr = errors.New("deadlock found when trying to get lock")
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), attempts)

	result, err := svc.SubmitQuiz(passingSubmission())
	require.ErrorContains(t, err, "deadlock")
	require.Nil(t, result)
}

func TestHasUserPassedQuiz(t *testing.T) {
	attempts := newFakeAttemptStore()
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), attempts)

	// No attempt yet.
	passed, err := svc.HasUserPassedQuiz(7, "quiz-1")
	require.NoError(t, err)
	require.False(t, passed)

	_, err = svc.SubmitQuiz(service.SubmitQuizRequest{
		QuizID: "quiz-1",
		UserID: 7,
		Answers: []service.QuestionSubmission{
			{QuestionID: "q1", SelectedAnswerIDs: []string{"a2"}},
		},
	})
	require.NoError(t, err)

	passed, err = svc.HasUserPassedQuiz(7, "quiz-1")
	require.NoError(t, err)
	require.False(t, passed)

	_, err = svc.SubmitQuiz(passingSubmission())
	require.NoError(t, err)

	passed, err = svc.HasUserPassedQuiz(7, "quiz-1")
	require.NoError(t, err)
	require.True(t, passed)
}

func TestGetUserQuizAttemptAbsent(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizStore(twoQuestionQuiz()), newFakeAttemptStore())

	attempt, err := svc.GetUserQuizAttempt(7, "quiz-1")
	require.NoError(t, err)
	require.Nil(t, attempt)
}

func TestCreateQuizBuildsAggregate(t *testing.T) {
	quizzes := newFakeQuizStore()
	svc := service.NewQuizService(quizzes, newFakeAttemptStore())

	quiz, err := svc.CreateQuiz(service.CreateQuizRequest{
		Title:         "Concurrency basics",
		LessonID:      "lesson-1",
		PassThreshold: 70,
		Questions: []service.CreateQuestionRequest{
			{
				Text: "What does the race detector find?",
				Answers: []service.CreateAnswerRequest{
					{Text: "data races", IsCorrect: true},
					{Text: "deadlocks"},
				},
			},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, quiz.ID)
	require.Equal(t, 70, quiz.PassThreshold)
	require.Len(t, quiz.Questions, 1)
	require.Len(t, quiz.Questions[0].Answers, 2)

	fetched, err := svc.GetQuiz(quiz.ID)
	require.NoError(t, err)
	require.Equal(t, quiz.Title, fetched.Title)
}

func TestGetQuizUnknownID(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizStore(), newFakeAttemptStore())

	_, err := svc.GetQuiz("missing")
	require.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestDeleteQuizUnknownID(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizStore(), newFakeAttemptStore())

	err := svc.DeleteQuiz("missing")
	require.ErrorIs(t, err, util.ErrQuizNotFound)
}
