package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ReferenceRepository struct {
	DB *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{DB: db}
}

func (r *ReferenceRepository) Create(ref *model.Reference) error {
	return r.DB.Create(ref).Error
}

func (r *ReferenceRepository) FindByID(id string) (*model.Reference, error) {
	var ref model.Reference
	err := r.DB.First(&ref, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *ReferenceRepository) FindAll() ([]model.Reference, error) {
	var refs []model.Reference
	err := r.DB.Order("created_at desc").Find(&refs).Error
	return refs, err
}

func (r *ReferenceRepository) FindByModule(moduleID string) ([]model.Reference, error) {
	var refs []model.Reference
	err := r.DB.Where("module_id = ?", moduleID).Order("created_at desc").Find(&refs).Error
	return refs, err
}

func (r *ReferenceRepository) FindByLesson(lessonID string) ([]model.Reference, error) {
	var refs []model.Reference
	err := r.DB.Where("lesson_id = ?", lessonID).Order("created_at desc").Find(&refs).Error
	return refs, err
}

func (r *ReferenceRepository) Update(ref *model.Reference) error {
	return r.DB.Save(ref).Error
}

func (r *ReferenceRepository) Delete(id string) error {
	return r.DB.Delete(&model.Reference{}, "id = ?", id).Error
}
