package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"naijapath/internal/config"
	"naijapath/internal/db"
	apihttp "naijapath/internal/http"
	"naijapath/internal/repository"
	"naijapath/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	questionRepo := repository.QuestionRepository(repository.NewStaticQuestionRepository())
	careerRepo := repository.CareerRepository(repository.NewStaticCareerRepository())
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		questionRepo = repository.NewPgQuestionRepository(pool)
		careerRepo = repository.NewPgCareerRepository(pool)
	}

	// The catalog is loaded once and shared read-only across all requests.
	questions, err := questionRepo.ListQuestions(ctx)
	if err != nil {
		logger.Fatal("load questions", zap.Error(err))
	}
	careers, err := careerRepo.ListCareers(ctx)
	if err != nil {
		logger.Fatal("load careers", zap.Error(err))
	}

	analysisSvc, err := service.NewCareerAnalysisService(questions, careers, logger)
	if err != nil {
		logger.Fatal("analysis service init", zap.Error(err))
	}
	quizSvc := service.NewQuizService(questions, logger)

	var limiter service.AnalysisRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisAnalysisRateLimiter(
				redisClient,
				time.Duration(cfg.AnalysisRateWindowMinutes)*time.Minute,
				cfg.AnalysisRateMax,
			)
		}
		cancel()
	}

	shareSvc := service.NewShareTokenService(cfg.ShareTokenSecret, time.Duration(cfg.ShareTokenTTLHours)*time.Hour)
	if cfg.ShareTokenSecret == "" {
		logger.Warn("share token secret not configured, share links disabled")
	}

	quizHandler := apihttp.NewQuizHandler(logger, quizSvc, analysisSvc, shareSvc, limiter, len(careers))
	router := apihttp.NewRouter(logger, quizHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("questions", len(questions)),
		zap.Int("careers", len(careers)),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
