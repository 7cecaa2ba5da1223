package repository

import (
	"time"

	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type LessonResourceRepository struct {
	DB *gorm.DB
}

func NewLessonResourceRepository(db *gorm.DB) *LessonResourceRepository {
	return &LessonResourceRepository{DB: db}
}

func (r *LessonResourceRepository) Create(res *model.LessonResource) error {
	return r.DB.Create(res).Error
}

// FindByID returns only active resources; soft-deleted rows behave as
// absent.
func (r *LessonResourceRepository) FindByID(id string) (*model.LessonResource, error) {
	var res model.LessonResource
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func applyDateFilters(query *gorm.DB, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		query = query.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("created_at <= ?", *endDate)
	}
	return query
}

func (r *LessonResourceRepository) List(page, limit int, startDate, endDate *time.Time) ([]model.LessonResource, int64, error) {
	var resources []model.LessonResource
	var total int64

	query := r.DB.Model(&model.LessonResource{}).Where("is_active = ?", true)
	query = applyDateFilters(query, startDate, endDate)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc")
	if page > 0 && limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	err := query.Find(&resources).Error
	return resources, total, err
}

func (r *LessonResourceRepository) FindByLesson(lessonID string, startDate, endDate *time.Time) ([]model.LessonResource, error) {
	var resources []model.LessonResource
	query := r.DB.Where("lesson_id = ? AND is_active = ?", lessonID, true)
	query = applyDateFilters(query, startDate, endDate)
	err := query.Order("created_at desc").Find(&resources).Error
	return resources, err
}

func (r *LessonResourceRepository) FindByType(resourceType model.ResourceType) ([]model.LessonResource, error) {
	var resources []model.LessonResource
	err := r.DB.Where("resource_type = ? AND is_active = ?", resourceType, true).
		Order("created_at desc").Find(&resources).Error
	return resources, err
}

func (r *LessonResourceRepository) Update(res *model.LessonResource) error {
	return r.DB.Save(res).Error
}

func (r *LessonResourceRepository) SoftDelete(id string) error {
	return r.DB.Model(&model.LessonResource{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *LessonResourceRepository) Delete(id string) error {
	return r.DB.Unscoped().Delete(&model.LessonResource{}, "id = ?", id).Error
}

func (r *LessonResourceRepository) IncrementDownloadCount(id string) error {
	return r.DB.Model(&model.LessonResource{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}
