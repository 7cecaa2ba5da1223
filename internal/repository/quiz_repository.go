package repository

import (
	"context"
	"encoding/json"
	"time"

	"lms_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	quizCacheKeyPrefix = "quiz_full:"
	quizCacheTTL       = 10 * time.Minute
)

type QuizRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewQuizRepository(db *gorm.DB, rdb *redis.Client) *QuizRepository {
	return &QuizRepository{DB: db, Redis: rdb}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindByIDWithQuestions loads the full quiz aggregate (questions and
// answers), read-through cached in Redis.
func (r *QuizRepository) FindByIDWithQuestions(id string) (*model.Quiz, error) {
	ctx := context.Background()
	cacheKey := quizCacheKeyPrefix + id

	if r.Redis != nil {
		if val, err := r.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached model.Quiz
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` asc")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.`order` asc")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if raw, err := json.Marshal(&quiz); err == nil {
			r.Redis.Set(ctx, cacheKey, raw, quizCacheTTL)
		}
	}

	return &quiz, nil
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Order("created_at desc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByLesson(lessonID string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("lesson_id = ?", lessonID).Order("created_at desc").Find(&quizzes).Error
	return quizzes, err
}

// Delete removes the quiz with its questions and answers in one
// transaction and drops the cached aggregate.
func (r *QuizRepository) Delete(id string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []string
		if err := tx.Model(&model.Question{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Answer{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	if r.Redis != nil {
		r.Redis.Del(context.Background(), quizCacheKeyPrefix+id)
	}
	return nil
}
