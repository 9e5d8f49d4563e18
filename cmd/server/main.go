package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"surveymon/internal/cache"
	"surveymon/internal/config"
	"surveymon/internal/repository"
	"surveymon/internal/service"
	"surveymon/internal/transport/rest"
	"surveymon/internal/transport/ws"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	analyticsCfg := config.DefaultAnalyticsConfig()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis", zap.String("addr", redisAddr))

	// WebSocket hub
	wsHub := ws.NewHub(logger)

	// Repositories
	surveyRepo := repository.NewSurveyRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	respondentRepo := repository.NewRespondentRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)

	// Caches
	snapshotCache := cache.NewSnapshotCache(rdb)

	// Services
	authSvc := service.NewAuthService(cfg)
	surveySvc := service.NewSurveyService(surveyRepo)
	answerSvc := service.NewAnswerService(surveyRepo, answerRepo, respondentRepo, snapshotCache, logger)
	analyticsSvc := service.NewAnalyticsService(surveyRepo, answerRepo, respondentRepo, analyticsRepo, snapshotCache, analyticsCfg, logger)
	insightSvc := service.NewInsightService(analyticsRepo, analyticsCfg, logger)
	reportSvc := service.NewReportService(analyticsRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	analyticsSvc.SetBroadcaster(wsHub)
	insightSvc.SetBroadcaster(wsHub)

	// Router
	container := &rest.Container{
		AuthService:      authSvc,
		SurveyService:    surveySvc,
		AnswerService:    answerSvc,
		AnalyticsService: analyticsSvc,
		InsightService:   insightSvc,
		ReportService:    reportSvc,
		WSHub:            wsHub,
		Log:              logger,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
