package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexconnect/config"
	"lexconnect/cron"
	"lexconnect/database"
	lawyerRepo "lexconnect/database/repository/lawyer"
	memoryRepo "lexconnect/database/repository/memory"
	reviewRepo "lexconnect/database/repository/review"
	"lexconnect/handlers"
	"lexconnect/metrics"
	"lexconnect/middleware"
	"lexconnect/routes"
	"lexconnect/services/lawyer"
	"lexconnect/services/rating"
	"lexconnect/services/review"
	"lexconnect/services/search"
	"lexconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	robfigcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	strategy, err := rating.ParseStrategy(config.AppConfig.RatingCreateStrategy)
	if err != nil {
		logger.Fatal("main: invalid rating strategy", zap.Error(err))
	}

	// repositories.
	var (
		reviews   reviewRepo.ReviewRepository
		lawyers   lawyerRepo.LawyerRepository
		storePing utils.StorePinger
	)
	storeDriver := config.AppConfig.StoreDriver
	switch storeDriver {
	case "memory":
		reviews = memoryRepo.NewReviewStore()
		lawyers = memoryRepo.NewLawyerStore()
		logger.Warn("main: using the in-memory store; data is lost on restart")
	default:
		storeDriver = "mongo"
		database.InitDB()
		if reviews, err = reviewRepo.NewMongoReviewRepo(); err != nil {
			logger.Fatal("main: failed to initialize review repository", zap.Error(err))
		}
		if lawyers, err = lawyerRepo.NewMongoLawyerRepo(); err != nil {
			logger.Fatal("main: failed to initialize lawyer repository", zap.Error(err))
		}
		storePing = func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
	}

	// services.
	aggregator := rating.NewAggregator(reviews, lawyers, m)
	reviewService := &review.DefaultReviewService{
		Reviews:     reviews,
		Lawyers:     lawyers,
		Aggregator:  aggregator,
		Strategy:    strategy,
		Metrics:     m,
		Logger:      logger,
		MaxPageSize: config.AppConfig.MaxPageSize,
	}
	lawyerService := &lawyer.DefaultLawyerService{Repo: lawyers}
	searchService := &search.DefaultSearchService{
		Lawyers: lawyers,
		Limits: search.Limits{
			DefaultPageSize: config.AppConfig.DefaultPageSize,
			MaxPageSize:     config.AppConfig.MaxPageSize,
		},
		Metrics: m,
	}

	// background rating maintenance.
	var (
		locker       cron.Locker = cron.NewLocalLocker()
		enqueuer     *cron.AsynqEnqueuer
		worker       *asynq.Server
		redisClients []*redis.Client
	)
	if storeDriver == "mongo" {
		cache := utils.GetCacheClient()
		redisClients = append(redisClients, cache)
		locker = &cron.RedisLocker{Client: cache}

		enqueuer = cron.NewAsynqEnqueuer()
		reviewService.Retry = enqueuer
		worker = cron.InitRecomputeWorker(aggregator, m)
	}

	sweeper := &cron.Sweeper{
		Lawyers:    lawyers,
		Aggregator: aggregator,
		Locker:     locker,
		BatchSize:  config.AppConfig.ReconcileBatchSize,
		Logger:     logger,
		Metrics:    m,
	}
	var scheduler *robfigcron.Cron
	if schedule := config.AppConfig.ReconcileSchedule; schedule != "" {
		if scheduler, err = cron.StartSweepScheduler(sweeper, schedule); err != nil {
			logger.Fatal("main: invalid reconcile schedule", zap.Error(err))
		}
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, storeDriver, storePing, redisClients)

	// handlers.
	reviewHandler := handlers.NewReviewHandler(reviewService)
	lawyerHandler := handlers.NewLawyerHandler(lawyerService, searchService)
	handlerBundle := &handlers.HandlerBundle{
		// Directory endpoints.
		SearchLawyersHandler:   lawyerHandler.SearchLawyersHandler,
		TextSearchHandler:      lawyerHandler.TextSearchHandler,
		GetLawyerHandler:       lawyerHandler.GetLawyerHandler,
		SpecializationsHandler: lawyerHandler.SpecializationsHandler,
		LanguagesHandler:       lawyerHandler.LanguagesHandler,

		// Review endpoints.
		ListLawyerReviewsHandler: reviewHandler.ListLawyerReviewsHandler,
		GetRatingStatsHandler:    reviewHandler.GetRatingStatsHandler,
		SubmitReviewHandler:      reviewHandler.SubmitReviewHandler,
		EditReviewHandler:        reviewHandler.EditReviewHandler,
		DeleteReviewHandler:      reviewHandler.DeleteReviewHandler,
		ListMyReviewsHandler:     reviewHandler.ListMyReviewsHandler,
		ReportReviewHandler:      reviewHandler.ReportReviewHandler,

		HealthHandler: handlers.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.PrometheusMetrics(m))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, prometheus.DefaultGatherer)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("store", storeDriver), zap.String("ratingStrategy", string(strategy)))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if worker != nil {
		worker.Shutdown()
	}
	if enqueuer != nil {
		if err := enqueuer.Close(); err != nil {
			logger.Warn("main: failed to close task client", zap.Error(err))
		}
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
