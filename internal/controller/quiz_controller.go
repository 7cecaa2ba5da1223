package controller

import (
	"errors"
	"strconv"

	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// Create godoc
// @Summary Create a new quiz with questions and answers
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuizRequest true "quiz payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req service.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.CreateQuiz(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// FindAll godoc
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) FindAll(ctx *gin.Context) {
	quizzes, err := c.Service.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// FindOne godoc
// @Summary Get quiz by id with its questions
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) FindOne(ctx *gin.Context) {
	quiz, err := c.Service.GetQuiz(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, quiz)
}

// FindByLesson godoc
// @Summary List quizzes for a lesson
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/lesson/{lessonId} [get]
func (c *QuizController) FindByLesson(ctx *gin.Context) {
	quizzes, err := c.Service.ListQuizzesByLesson(ctx.Param("lessonId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Remove godoc
// @Summary Delete quiz by id
// @Tags quizzes
// @Security ApiKeyAuth
// @Param id path string true "quiz id"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Remove(ctx *gin.Context) {
	if err := c.Service.DeleteQuiz(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}

// Submit godoc
// @Summary Submit quiz answers for grading
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitQuizRequest true "submission payload"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Non-admin callers may only submit for themselves.
	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID != req.UserID && claims.Role != model.Admin {
		util.Forbidden(ctx)
		return
	}

	result, err := c.Service.SubmitQuiz(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidQuizState):
			util.LogInternalError(ctx, err)
		default:
			if _, ok := util.AsValidationError(err); ok {
				util.BadRequest(ctx, err.Error())
			} else {
				util.LogInternalError(ctx, err)
			}
		}
		return
	}

	util.Success(ctx, result)
}

// GetUserQuizAttempt godoc
// @Summary Get a user's attempt for a quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Param quizId path string true "quiz id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/attempt/{userId}/{quizId} [get]
func (c *QuizController) GetUserQuizAttempt(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	attempt, err := c.Service.GetUserQuizAttempt(uint(userID), ctx.Param("quizId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

// HasUserPassedQuiz godoc
// @Summary Whether a user's attempt for a quiz passed
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Param quizId path string true "quiz id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/passed/{userId}/{quizId} [get]
func (c *QuizController) HasUserPassedQuiz(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	passed, err := c.Service.HasUserPassedQuiz(uint(userID), ctx.Param("quizId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"passed": passed})
}
