package controller

import (
	"errors"

	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *service.ReviewService
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{Service: svc}
}

// Create godoc
// @Summary Create a review for a course
// @Tags reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param body body service.ReviewRequest true "review payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/courses/{courseId}/reviews [post]
func (c *ReviewController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.Service.CreateReview(claims.UserID, ctx.Param("courseId"), req)
	if err != nil {
		if errors.Is(err, util.ErrReviewExists) {
			util.Error(ctx, 409, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, review)
}

// FindAll godoc
// @Summary List reviews for a course
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param startDate query string false "RFC3339 lower bound"
// @Param endDate query string false "RFC3339 upper bound"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/courses/{courseId}/reviews [get]
func (c *ReviewController) FindAll(ctx *gin.Context) {
	var filter service.DateRangeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reviews, err := c.Service.FindCourseReviews(ctx.Param("courseId"), filter)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDateRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, reviews)
}

// FindMine godoc
// @Summary Get the current user's review for a course
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/reviews/me [get]
func (c *ReviewController) FindMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	review, err := c.Service.FindMyReview(claims.UserID, ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrReviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, review)
}

// Update godoc
// @Summary Update the current user's review for a course
// @Tags reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param body body service.ReviewRequest true "review payload"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/reviews [patch]
func (c *ReviewController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.Service.UpdateReview(claims.UserID, ctx.Param("courseId"), req)
	if err != nil {
		if errors.Is(err, util.ErrReviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, review)
}

// Remove godoc
// @Summary Delete the current user's review for a course
// @Tags reviews
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId}/reviews [delete]
func (c *ReviewController) Remove(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.DeleteReview(claims.UserID, ctx.Param("courseId")); err != nil {
		if errors.Is(err, util.ErrReviewNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
