package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/northcoast-bjj/academy-api/api/swagger"
	"github.com/northcoast-bjj/academy-api/internal/handler"
	"github.com/northcoast-bjj/academy-api/internal/ratelimit"
	"github.com/northcoast-bjj/academy-api/internal/repository"
	"github.com/northcoast-bjj/academy-api/internal/router"
	"github.com/northcoast-bjj/academy-api/internal/service"
	"github.com/northcoast-bjj/academy-api/pkg/cache"
	"github.com/northcoast-bjj/academy-api/pkg/config"
	"github.com/northcoast-bjj/academy-api/pkg/database"
	"github.com/northcoast-bjj/academy-api/pkg/jobs"
	"github.com/northcoast-bjj/academy-api/pkg/logger"
)

// @title North Coast BJJ Academy API
// @version 1.0.0
// @description Backend for the academy marketing site: class schedule views, lead capture forms and admin lead management.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	var cachePing func() error
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metrics, logr)
		cachePing = func() error { return redisClient.Ping(context.Background()).Err() }
	} else {
		cacheSvc = service.NewCacheService(nil, metrics, logr)
	}

	limiter := ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	limiter.StartJanitor(ctx, cfg.RateLimit.SweepInterval)

	notifier := service.NewLeadNotifier(logr)
	queue := jobs.NewQueue("lead-notify", notifier.Handle, jobs.QueueConfig{
		Workers:    cfg.Leads.NotifyWorkers,
		MaxRetries: cfg.Leads.NotifyRetries,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()

	scheduleRepo := repository.NewClassScheduleRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	userRepo := repository.NewUserRepository(db)

	scheduleSvc := service.NewScheduleService(scheduleRepo, cacheSvc, cfg.Cache.ScheduleTTL, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, cacheSvc, cfg.Cache.ScheduleTTL, logr)
	achievementSvc := service.NewAchievementService(achievementRepo, cacheSvc, cfg.Cache.ScheduleTTL, logr)
	reviewSvc := service.NewReviewService(reviewRepo, cacheSvc, cfg.Cache.ReviewsTTL, cfg.Site.GoogleBusinessURL, logr)
	leadSvc := service.NewLeadService(leadRepo, queue, metrics, logr)
	authSvc := service.NewAuthService(userRepo, cfg.JWT, logr)

	maxAge := int(cfg.Cache.ScheduleTTL.Seconds())
	engine := router.New(router.Dependencies{
		Config:      cfg,
		Logger:      logr,
		Limiter:     limiter,
		Metrics:     metrics,
		Auth:        authSvc,
		Schedule:    handler.NewScheduleHandler(scheduleSvc, maxAge),
		Leads:       handler.NewLeadHandler(leadSvc),
		Content:     handler.NewContentHandler(instructorSvc, achievementSvc, reviewSvc, maxAge),
		AuthHandler: handler.NewAuthHandler(authSvc),
		DBPing:      db.Ping,
		CachePing:   cachePing,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
