package service

import (
	"errors"
	"fmt"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// DateRangeFilter bounds a listing by creation time (ISO 8601 values).
type DateRangeFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (f *DateRangeFilter) parse() (start, end *time.Time, err error) {
	if f.StartDate != "" {
		t, err := time.Parse(time.RFC3339, f.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", util.ErrInvalidDateRange, f.StartDate)
		}
		start = &t
	}
	if f.EndDate != "" {
		t, err := time.Parse(time.RFC3339, f.EndDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", util.ErrInvalidDateRange, f.EndDate)
		}
		end = &t
	}
	return start, end, nil
}

func (s *ReviewService) CreateReview(userID uint, courseID string, req ReviewRequest) (*model.Review, error) {
	_, err := s.Repo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return nil, util.ErrReviewExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) FindCourseReviews(courseID string, filter DateRangeFilter) ([]model.Review, error) {
	start, end, err := filter.parse()
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByCourse(courseID, start, end)
}

func (s *ReviewService) FindMyReview(userID uint, courseID string) (*model.Review, error) {
	review, err := s.Repo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrReviewNotFound
	}
	return review, err
}

func (s *ReviewService) UpdateReview(userID uint, courseID string, req ReviewRequest) (*model.Review, error) {
	review, err := s.Repo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrReviewNotFound
		}
		return nil, err
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := s.Repo.Save(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(userID uint, courseID string) error {
	review, err := s.Repo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrReviewNotFound
		}
		return err
	}
	return s.Repo.Delete(review)
}
