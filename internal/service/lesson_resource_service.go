package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LessonResourceService struct {
	Repo    *repository.LessonResourceRepository
	Storage *StorageService
}

func NewLessonResourceService(repo *repository.LessonResourceRepository, storage *StorageService) *LessonResourceService {
	return &LessonResourceService{Repo: repo, Storage: storage}
}

type CreateLessonResourceRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	LessonID    string `form:"lessonId"`
}

var allowedResourceMimeTypes = []string{
	util.MimePDF,
	util.MimeImage,
	util.MimeVideo,
	util.MimeAudio,
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/zip",
}

// Upload stores the file through the configured provider and records the
// resource. The resource type is derived from the sniffed MIME type, not
// the client-supplied one.
func (s *LessonResourceService) Upload(ctx context.Context, uploaderID uint, file *multipart.FileHeader, req CreateLessonResourceRequest) (*model.LessonResource, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, allowedResourceMimeTypes)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s/%s%s", util.LessonResourcesPath, model.GenerateUUID(), filepath.Ext(file.Filename))
	fileURL, err := s.Storage.Upload(ctx, filename, src, file.Size, mimeType)
	if err != nil {
		return nil, err
	}

	resource := &model.LessonResource{
		Title:        req.Title,
		Description:  req.Description,
		Filename:     filename,
		OriginalName: file.Filename,
		Mimetype:     mimeType,
		Size:         file.Size,
		FilePath:     filename,
		FileURL:      fileURL,
		ResourceType: model.ResourceTypeFromMime(mimeType),
		LessonID:     req.LessonID,
		UploaderID:   uploaderID,
		IsActive:     true,
	}

	if err := s.Repo.Create(resource); err != nil {
		// best effort cleanup of the stored file
		if delErr := s.Storage.Delete(ctx, filename); delErr != nil {
			logger.Log.Error("failed to clean up stored file after db error",
				zap.String("filename", filename), zap.Error(delErr))
		}
		return nil, err
	}

	return resource, nil
}

func (s *LessonResourceService) FindAll(page, limit int, filter DateRangeFilter) ([]model.LessonResource, int64, error) {
	start, end, err := filter.parse()
	if err != nil {
		return nil, 0, err
	}
	return s.Repo.List(page, limit, start, end)
}

func (s *LessonResourceService) FindOne(id string) (*model.LessonResource, error) {
	resource, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResourceNotFound
	}
	return resource, err
}

func (s *LessonResourceService) FindByLesson(lessonID string, filter DateRangeFilter) ([]model.LessonResource, error) {
	start, end, err := filter.parse()
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByLesson(lessonID, start, end)
}

func (s *LessonResourceService) FindByType(resourceType model.ResourceType) ([]model.LessonResource, error) {
	return s.Repo.FindByType(resourceType)
}

type UpdateLessonResourceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	LessonID    *string `json:"lessonId"`
}

func (s *LessonResourceService) Update(id string, req UpdateLessonResourceRequest) (*model.LessonResource, error) {
	resource, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.LessonID != nil {
		resource.LessonID = *req.LessonID
	}

	if err := s.Repo.Update(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// SoftDelete hides the resource without touching the stored file.
func (s *LessonResourceService) SoftDelete(id string) error {
	if _, err := s.FindOne(id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(id)
}

// PermanentDelete removes the record and the stored file. A failed file
// removal is logged but does not keep the record alive.
func (s *LessonResourceService) PermanentDelete(ctx context.Context, id string) error {
	resource, err := s.FindOne(id)
	if err != nil {
		return err
	}

	if err := s.Storage.Delete(ctx, resource.Filename); err != nil {
		logger.Log.Error("failed to delete stored file during permanent delete",
			zap.String("resourceId", id),
			zap.String("filename", resource.Filename),
			zap.Error(err))
	}

	return s.Repo.Delete(id)
}

// RecordDownload bumps the download counter and returns the resource for
// redirecting to its URL.
func (s *LessonResourceService) RecordDownload(id string) (*model.LessonResource, error) {
	resource, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.IncrementDownloadCount(id); err != nil {
		return nil, err
	}
	return resource, nil
}
