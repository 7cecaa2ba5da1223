package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		quizzes := authGroup.Group("/quizzes")
		{
			quizzes.POST("", middleware.RoleMiddleware(model.Admin), c.quiz.Create)
			quizzes.GET("", c.quiz.FindAll)
			quizzes.GET("/:id", c.quiz.FindOne)
			quizzes.GET("/lesson/:lessonId", c.quiz.FindByLesson)
			quizzes.DELETE("/:id", middleware.RoleMiddleware(model.Admin), c.quiz.Remove)

			quizzes.POST("/submit", c.quiz.Submit)
			quizzes.GET("/attempt/:userId/:quizId", c.quiz.GetUserQuizAttempt)
			quizzes.GET("/passed/:userId/:quizId", c.quiz.HasUserPassedQuiz)
		}

		references := authGroup.Group("/references")
		{
			references.POST("", middleware.RoleMiddleware(model.Admin), c.reference.Create)
			references.GET("", c.reference.FindAll)
			references.GET("/:id", c.reference.FindOne)
			references.GET("/module/:moduleId", c.reference.FindByModule)
			references.GET("/lesson/:lessonId", c.reference.FindByLesson)
			references.PATCH("/:id", middleware.RoleMiddleware(model.Admin), c.reference.Update)
			references.DELETE("/:id", middleware.RoleMiddleware(model.Admin), c.reference.Remove)
		}

		reviews := authGroup.Group("/courses/:courseId/reviews")
		{
			reviews.POST("", c.review.Create)
			reviews.GET("", c.review.FindAll)
			reviews.GET("/me", c.review.FindMine)
			reviews.PATCH("", c.review.Update)
			reviews.DELETE("", c.review.Remove)
		}

		resources := authGroup.Group("/lesson-resources")
		{
			resources.POST("/upload", middleware.RoleMiddleware(model.Teacher, model.Admin), c.lessonResource.Upload)
			resources.GET("", c.lessonResource.FindAll)
			resources.GET("/:id", c.lessonResource.FindOne)
			resources.GET("/lesson/:lessonId", c.lessonResource.FindByLesson)
			resources.GET("/type/:type", c.lessonResource.FindByType)
			resources.GET("/:id/download", c.lessonResource.Download)
			resources.PATCH("/:id", middleware.RoleMiddleware(model.Teacher, model.Admin), c.lessonResource.Update)
			resources.DELETE("/:id", middleware.RoleMiddleware(model.Teacher, model.Admin), c.lessonResource.Remove)
			resources.DELETE("/:id/permanent", middleware.RoleMiddleware(model.Admin), c.lessonResource.PermanentDelete)
		}
	}
}
