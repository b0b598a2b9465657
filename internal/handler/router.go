package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/middleware"
)

// RouterDeps - обработчики и middleware, из которых собирается роутер
type RouterDeps struct {
	Questions  *QuestionHandler
	Categories *CategoryHandler
	Quizzes    *QuizHandler
	Export     *ExportHandler
	Health     *HealthHandler

	// RateLimit - необязательный глобальный лимит запросов (nil - выключен)
	RateLimit gin.HandlerFunc
}

// NewRouter создает gin.Engine со всеми маршрутами API.
// Неизвестный путь дает 404, известный путь с чужим методом дает 405, паника дает 500.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(Recovery))

	// CORS открыт для любых источников
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
	}))

	if deps.RateLimit != nil {
		router.Use(deps.RateLimit)
	}

	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)

	if deps.Health != nil {
		router.GET("/health", deps.Health.Health)
	}

	// Категории
	router.GET("/categories", deps.Categories.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		deps.Categories.GetCategoryQuestions,
	)

	// Вопросы
	router.GET("/questions", deps.Questions.ListQuestions)
	router.POST("/questions", deps.Questions.CreateQuestion)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"),
		deps.Questions.DeleteQuestion,
	)
	router.POST("/search", deps.Questions.SearchQuestions)

	// Игра
	router.POST("/quizzes", deps.Quizzes.PlayQuiz)

	// Выгрузка
	if deps.Export != nil {
		router.GET("/export/questions", deps.Export.ExportQuestions)
	}

	return router
}
