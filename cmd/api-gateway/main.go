package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-publisher-api/api/swagger"
	"github.com/noah-isme/sma-publisher-api/internal/classroom"
	"github.com/noah-isme/sma-publisher-api/internal/handler"
	"github.com/noah-isme/sma-publisher-api/internal/middleware"
	"github.com/noah-isme/sma-publisher-api/internal/repository"
	"github.com/noah-isme/sma-publisher-api/internal/service"
	"github.com/noah-isme/sma-publisher-api/pkg/cache"
	"github.com/noah-isme/sma-publisher-api/pkg/config"
	"github.com/noah-isme/sma-publisher-api/pkg/database"
	"github.com/noah-isme/sma-publisher-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-publisher-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-publisher-api/pkg/middleware/requestid"
)

// @title SMA Publisher API
// @version 0.1.0
// @description Multi-course content distribution gateway
// @BasePath /
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, snapshot caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	sectionRepo := repository.NewSectionRepository(db)
	linkRepo := repository.NewTopicLinkRepository(db)
	logRepo := repository.NewDistributionLogRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	classroomClient := classroom.NewClient(cfg.Classroom, logr)

	snapshotSvc := service.NewSnapshotService(sectionRepo, linkRepo, classroomClient, cacheRepo, cfg.Snapshots.CacheTTL, logr, metrics)
	dispatcher := service.NewDispatcher(classroomClient, logr, metrics)
	distributionSvc := service.NewDistributionService(snapshotSvc, dispatcher, logRepo, validate, logr, metrics, cfg.Distribution.MaxTargets)
	sectionSvc := service.NewSectionService(sectionRepo, linkRepo, snapshotSvc, validate, logr)
	logSvc := service.NewLogService(logRepo, cfg.Exports.Enabled, logr)
	tokenSvc := service.NewTokenService(cfg.JWT)

	distributionHandler := handler.NewDistributionHandler(distributionSvc)
	sectionHandler := handler.NewSectionHandler(sectionSvc)
	topicHandler := handler.NewTopicHandler(snapshotSvc)
	logHandler := handler.NewLogHandler(logSvc)
	metricsHandler := handler.NewMetricsHandler(metrics)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(tokenSvc))
	{
		api.POST("/distributions", distributionHandler.Publish)
		api.GET("/distributions", logHandler.List)
		api.GET("/distributions/export", logHandler.Export)

		api.GET("/courses/:courseId/sections", sectionHandler.List)
		api.POST("/courses/:courseId/sections", sectionHandler.Create)
		api.PUT("/courses/:courseId/sections/:id", sectionHandler.Update)
		api.DELETE("/courses/:courseId/sections/:id", sectionHandler.Delete)

		api.PUT("/courses/:courseId/topic-links", sectionHandler.LinkTopic)
		api.DELETE("/courses/:courseId/topic-links/:topicId", sectionHandler.UnlinkTopic)

		api.GET("/courses/:courseId/topics", topicHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
