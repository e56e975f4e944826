// Package app wires configuration into the adapters and usecases shared by
// the HTTP server and the command line tool.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/question-prism/internal/adapter/client"
	"github.com/ressKim-io/question-prism/internal/adapter/http/handler"
	"github.com/ressKim-io/question-prism/internal/adapter/http/router"
	"github.com/ressKim-io/question-prism/internal/adapter/ocr"
	"github.com/ressKim-io/question-prism/internal/adapter/repository/memory"
	redisrepo "github.com/ressKim-io/question-prism/internal/adapter/repository/redis"
	"github.com/ressKim-io/question-prism/internal/adapter/spreadsheet"
	"github.com/ressKim-io/question-prism/internal/domain/repository"
	"github.com/ressKim-io/question-prism/internal/domain/service"
	"github.com/ressKim-io/question-prism/internal/infrastructure/cache"
	"github.com/ressKim-io/question-prism/internal/infrastructure/config"
	"github.com/ressKim-io/question-prism/internal/usecase"
)

// App holds the wired services
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Redis     *redis.Client
	LLM       *client.LLMClient
	Questions usecase.QuestionUsecase
	Batches   usecase.BatchUsecase
}

// New builds every adapter and usecase from cfg. Redis is optional: when
// it is disabled or unreachable batches are kept in memory.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	backend, err := cfg.LLM.Backend()
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Logger: log}

	var batchRepo repository.BatchRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, keeping batches in memory", zap.Error(err))
		} else {
			log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr()))
			a.Redis = redisClient
			batchRepo = redisrepo.NewBatchRepository(redisClient, cfg.Batch.TTL)
		}
	}
	if batchRepo == nil {
		batchRepo = memory.NewBatchRepository(cfg.Batch.TTL)
	}

	a.LLM = client.NewLLMClient(backend.BaseURL, backend.APIKey, backend.Model, cfg.LLM.Timeout)
	if backend.APIKey == "" {
		log.Warn("LLM API key not set, classification and synthesis will fail",
			zap.String("provider", cfg.LLM.Provider))
	}

	pipeline := usecase.NewPipeline(
		client.NewLLMClassifier(a.LLM, cfg.LLM.Temperature),
		searchers(cfg),
		a.LLM,
		usecase.PipelineOptions{
			EnforceOverrides: cfg.Classifier.EnforceOverrides,
			Temperature:      cfg.LLM.Temperature,
			MaxTokens:        cfg.LLM.MaxTokens,
		},
		log,
	)

	a.Questions = usecase.NewQuestionUsecase(pipeline, ocr.NewTesseractRecognizer(cfg.OCR.Languages), log)
	a.Batches = usecase.NewBatchUsecase(
		pipeline,
		spreadsheet.NewReader(),
		spreadsheet.NewWriter(),
		batchRepo,
		cfg.Batch.RatePerSecond,
		log,
	)

	return a, nil
}

func searchers(cfg *config.Config) []service.Searcher {
	var s []service.Searcher
	if cfg.Search.Tavily.Enabled {
		s = append(s, client.NewTavilyClient(cfg.Search.Tavily.BaseURL, cfg.Search.Tavily.APIKey, cfg.Search.MaxResults, cfg.Search.Timeout))
	}
	if cfg.Search.DuckDuckGo.Enabled {
		s = append(s, client.NewDuckDuckGoClient(cfg.Search.DuckDuckGo.BaseURL, cfg.Search.MaxResults, cfg.Search.Timeout))
	}
	return s
}

// Handler returns the HTTP handler for the API server
func (a *App) Handler() http.Handler {
	gin.SetMode(a.Config.Server.Mode)

	return router.Setup(router.Dependencies{
		QuestionUC: a.Questions,
		BatchUC:    a.Batches,
		Redis:      a.Redis,
		LLM:        a.LLM,
		Stream: handler.StreamOptions{
			ChunkSize: a.Config.Stream.ChunkSize,
			Delay:     a.Config.Stream.Delay,
		},
		MaxUploadBytes: a.Config.Batch.MaxUploadBytes,
		Logger:         a.Logger,
	})
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
func (a *App) Serve() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	a.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Logger.Info("Server exited")
	return nil
}

// Close releases external connections
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}
