package controller

import (
	"errors"

	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReferenceController struct {
	Service *service.ReferenceService
}

func NewReferenceController(svc *service.ReferenceService) *ReferenceController {
	return &ReferenceController{Service: svc}
}

// Create godoc
// @Summary Create a new reference
// @Tags references
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ReferenceRequest true "reference payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/references [post]
func (c *ReferenceController) Create(ctx *gin.Context) {
	var req service.ReferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ref, err := c.Service.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, ref)
}

// FindAll godoc
// @Summary List references
// @Tags references
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/references [get]
func (c *ReferenceController) FindAll(ctx *gin.Context) {
	refs, err := c.Service.FindAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, refs)
}

// FindOne godoc
// @Summary Get reference by id
// @Tags references
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "reference id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/references/{id} [get]
func (c *ReferenceController) FindOne(ctx *gin.Context) {
	ref, err := c.Service.FindOne(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrReferenceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, ref)
}

// FindByModule godoc
// @Summary List references for a module
// @Tags references
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "module id"
// @Success 200 {object} util.Response
// @Router /api/references/module/{moduleId} [get]
func (c *ReferenceController) FindByModule(ctx *gin.Context) {
	refs, err := c.Service.FindByModule(ctx.Param("moduleId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, refs)
}

// FindByLesson godoc
// @Summary List references for a lesson
// @Tags references
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/references/lesson/{lessonId} [get]
func (c *ReferenceController) FindByLesson(ctx *gin.Context) {
	refs, err := c.Service.FindByLesson(ctx.Param("lessonId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, refs)
}

// Update godoc
// @Summary Update reference by id
// @Tags references
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "reference id"
// @Param body body service.UpdateReferenceRequest true "fields to update"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/references/{id} [patch]
func (c *ReferenceController) Update(ctx *gin.Context) {
	var req service.UpdateReferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ref, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrReferenceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, ref)
}

// Remove godoc
// @Summary Delete reference by id
// @Tags references
// @Security ApiKeyAuth
// @Param id path string true "reference id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/references/{id} [delete]
func (c *ReferenceController) Remove(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrReferenceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
