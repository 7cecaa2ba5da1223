package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type ReferenceService struct {
	Repo *repository.ReferenceRepository
}

func NewReferenceService(repo *repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{Repo: repo}
}

type ReferenceRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	Description string `json:"description"`
	ModuleID    string `json:"moduleId"`
	LessonID    string `json:"lessonId"`
}

func (s *ReferenceService) Create(req ReferenceRequest) (*model.Reference, error) {
	ref := &model.Reference{
		Title:       req.Title,
		Author:      req.Author,
		URL:         req.URL,
		Description: req.Description,
		ModuleID:    req.ModuleID,
		LessonID:    req.LessonID,
	}
	if err := s.Repo.Create(ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *ReferenceService) FindAll() ([]model.Reference, error) {
	return s.Repo.FindAll()
}

func (s *ReferenceService) FindOne(id string) (*model.Reference, error) {
	ref, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrReferenceNotFound
	}
	return ref, err
}

func (s *ReferenceService) FindByModule(moduleID string) ([]model.Reference, error) {
	return s.Repo.FindByModule(moduleID)
}

func (s *ReferenceService) FindByLesson(lessonID string) ([]model.Reference, error) {
	return s.Repo.FindByLesson(lessonID)
}

// UpdateRequest carries optional fields; nil means keep the stored value.
type UpdateReferenceRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	ModuleID    *string `json:"moduleId"`
	LessonID    *string `json:"lessonId"`
}

func (s *ReferenceService) Update(id string, req UpdateReferenceRequest) (*model.Reference, error) {
	ref, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ref.Title = *req.Title
	}
	if req.Author != nil {
		ref.Author = *req.Author
	}
	if req.URL != nil {
		ref.URL = *req.URL
	}
	if req.Description != nil {
		ref.Description = *req.Description
	}
	if req.ModuleID != nil {
		ref.ModuleID = *req.ModuleID
	}
	if req.LessonID != nil {
		ref.LessonID = *req.LessonID
	}

	if err := s.Repo.Update(ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *ReferenceService) Delete(id string) error {
	if _, err := s.FindOne(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
