package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizforge/internal/adapter"
	"quizforge/internal/adapter/wikipedia"
	"quizforge/internal/cache"
	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/handler"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Select the quiz set cache backend
	var quizCache domain.Cache
	switch cfg.Cache.Backend {
	case "redis":
		appLogger.Info("Initializing Redis cache", zap.String("address", cfg.Cache.Redis.Address))
		redisClient, err := cache.NewRedisClient(cfg.Cache.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		quizCache = adapter.NewRedisCacheAdapter(redisClient)
	case "file":
		appLogger.Info("Initializing file cache", zap.String("dir", cfg.Cache.Dir))
		quizCache, err = adapter.NewFileCacheAdapter(cfg.Cache.Dir)
		if err != nil {
			appLogger.Fatal("Failed to create cache directory", zap.Error(err))
		}
	default:
		appLogger.Fatal("Unsupported cache backend", zap.String("backend", cfg.Cache.Backend))
	}

	source := wikipedia.NewSource(cfg.Source.BaseURL, cfg.Source.FetchTimeout, appLogger)

	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	quizService := service.NewQuizService(source, quizCache, rng)
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz/generate", quizHandler.GenerateQuiz)
	apiGroup.Post("/quiz/evaluate", quizHandler.EvaluateQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
