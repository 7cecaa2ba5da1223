package controller

import (
	"errors"
	"net/http"
	"strconv"

	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonResourceController struct {
	Service *service.LessonResourceService
}

func NewLessonResourceController(svc *service.LessonResourceService) *LessonResourceController {
	return &LessonResourceController{Service: svc}
}

// Upload godoc
// @Summary Upload a lesson resource file
// @Tags lesson-resources
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "resource file"
// @Param title formData string true "resource title"
// @Param description formData string false "resource description"
// @Param lessonId formData string false "lesson id"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/lesson-resources/upload [post]
func (c *LessonResourceController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	var req service.CreateLessonResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.Service.Upload(ctx.Request.Context(), claims.UserID, file, req)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedFileType) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, resource)
}

// FindAll godoc
// @Summary List lesson resources
// @Tags lesson-resources
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page number, starts at 1"
// @Param limit query int false "page size"
// @Param startDate query string false "RFC3339 lower bound"
// @Param endDate query string false "RFC3339 upper bound"
// @Success 200 {object} util.Response
// @Router /api/lesson-resources [get]
func (c *LessonResourceController) FindAll(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var filter service.DateRangeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resources, total, err := c.Service.FindAll(page, limit, filter)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDateRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  resources,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// FindOne godoc
// @Summary Get lesson resource by id
// @Tags lesson-resources
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "resource id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lesson-resources/{id} [get]
func (c *LessonResourceController) FindOne(ctx *gin.Context) {
	resource, err := c.Service.FindOne(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resource)
}

// FindByLesson godoc
// @Summary List resources for a lesson
// @Tags lesson-resources
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Param startDate query string false "RFC3339 lower bound"
// @Param endDate query string false "RFC3339 upper bound"
// @Success 200 {object} util.Response
// @Router /api/lesson-resources/lesson/{lessonId} [get]
func (c *LessonResourceController) FindByLesson(ctx *gin.Context) {
	var filter service.DateRangeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resources, err := c.Service.FindByLesson(ctx.Param("lessonId"), filter)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDateRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resources)
}

// FindByType godoc
// @Summary List resources by type
// @Tags lesson-resources
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "resource type" Enums(document, image, video, audio, archive, other)
// @Success 200 {object} util.Response
// @Router /api/lesson-resources/type/{type} [get]
func (c *LessonResourceController) FindByType(ctx *gin.Context) {
	resources, err := c.Service.FindByType(model.ResourceType(ctx.Param("type")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// Update godoc
// @Summary Update lesson resource metadata
// @Tags lesson-resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "resource id"
// @Param body body service.UpdateLessonResourceRequest true "fields to update"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lesson-resources/{id} [patch]
func (c *LessonResourceController) Update(ctx *gin.Context) {
	var req service.UpdateLessonResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resource)
}

// Remove godoc
// @Summary Deactivate a lesson resource
// @Tags lesson-resources
// @Security ApiKeyAuth
// @Param id path string true "resource id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/lesson-resources/{id} [delete]
func (c *LessonResourceController) Remove(ctx *gin.Context) {
	if err := c.Service.SoftDelete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// PermanentDelete godoc
// @Summary Permanently delete a lesson resource and its file
// @Tags lesson-resources
// @Security ApiKeyAuth
// @Param id path string true "resource id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/lesson-resources/{id}/permanent [delete]
func (c *LessonResourceController) PermanentDelete(ctx *gin.Context) {
	if err := c.Service.PermanentDelete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// Download godoc
// @Summary Download a lesson resource
// @Tags lesson-resources
// @Security ApiKeyAuth
// @Param id path string true "resource id"
// @Success 302
// @Failure 404 {object} util.Response
// @Router /api/lesson-resources/{id}/download [get]
func (c *LessonResourceController) Download(ctx *gin.Context) {
	resource, err := c.Service.RecordDownload(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.Redirect(http.StatusFound, resource.FileURL)
}
