package repository

import (
	"errors"

	"lms_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

// SaveAttempt persists the attempt and its responses as one atomic unit.
// The attempt is upserted on the (user_id, quiz_id) unique index so a
// resubmission overwrites the previous attempt without a read-then-write
// race; the old response rows are replaced inside the same transaction.
func (r *QuizAttemptRepository) SaveAttempt(attempt *model.QuizAttempt, responses []model.UserQuestionResponse) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if attempt.ID == "" {
			attempt.ID = model.GenerateUUID()
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "passed", "attempted_at", "updated_at"}),
		}).Create(attempt).Error; err != nil {
			return err
		}

		// On conflict the surviving row keeps its original id; read it
		// back so the responses attach to the right attempt.
		var saved model.QuizAttempt
		if err := tx.Where("user_id = ? AND quiz_id = ?", attempt.UserID, attempt.QuizID).First(&saved).Error; err != nil {
			return err
		}
		attempt.ID = saved.ID

		if err := tx.Where("attempt_id = ?", attempt.ID).Delete(&model.UserQuestionResponse{}).Error; err != nil {
			return err
		}

		for i := range responses {
			responses[i].ID = ""
			responses[i].AttemptID = attempt.ID
		}
		return tx.Create(&responses).Error
	})
}

// FindByUserAndQuiz returns the user's attempt for a quiz with its
// responses, or nil when no attempt exists.
func (r *QuizAttemptRepository) FindByUserAndQuiz(userID uint, quizID string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Preload("Responses").
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}
