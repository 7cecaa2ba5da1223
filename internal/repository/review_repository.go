package repository

import (
	"time"

	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) Save(review *model.Review) error {
	return r.DB.Save(review).Error
}

func (r *ReviewRepository) FindByUserAndCourse(userID uint, courseID string) (*model.Review, error) {
	var review model.Review
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByCourse lists a course's reviews, optionally bounded by creation
// time.
func (r *ReviewRepository) FindByCourse(courseID string, startDate, endDate *time.Time) ([]model.Review, error) {
	query := r.DB.Where("course_id = ?", courseID)
	if startDate != nil {
		query = query.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("created_at <= ?", *endDate)
	}

	var reviews []model.Review
	err := query.Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Delete(review *model.Review) error {
	return r.DB.Delete(review).Error
}
