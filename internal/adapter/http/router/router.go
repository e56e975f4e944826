package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/question-prism/internal/adapter/http/handler"
	"github.com/ressKim-io/question-prism/internal/adapter/http/middleware"
	"github.com/ressKim-io/question-prism/internal/usecase"
)

// Dependencies holds everything the HTTP layer needs.
// Redis and LLM may be nil when not configured; a typed nil LLM is
// treated as nil.
type Dependencies struct {
	QuestionUC     usecase.QuestionUsecase
	BatchUC        usecase.BatchUsecase
	Redis          *redis.Client
	LLM            handler.ReadinessChecker
	Stream         handler.StreamOptions
	MaxUploadBytes int64
	Logger         *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.Redis, deps.LLM)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	questionHandler := handler.NewQuestionHandler(deps.QuestionUC, deps.Stream)
	batchHandler := handler.NewBatchHandler(deps.BatchUC)
	upload := middleware.BodyLimit(deps.MaxUploadBytes)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", questionHandler.ListCategories)

		questions := v1.Group("/questions")
		{
			questions.POST("", questionHandler.Ask)
			questions.POST("/stream", questionHandler.Stream)
			questions.POST("/classify", questionHandler.Classify)
		}

		v1.POST("/images", upload, questionHandler.Scan)

		batches := v1.Group("/batches")
		{
			batches.POST("", upload, batchHandler.Create)
			batches.GET("/:id", batchHandler.Get)
			batches.GET("/:id/export", batchHandler.Export)
		}
	}

	return router
}
