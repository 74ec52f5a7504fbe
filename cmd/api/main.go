package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/messaging"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/storage"
	authUC "github.com/marcos-nsantos/df-fix-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/caller"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/convert"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/export"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/fix"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/ingest"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/station"
)

// @title DF Fix API
// @version 1.0
// @description Bearing reports from direction-finding stations, triangulated into caller fixes.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	area, err := cfg.Fix.Area()
	if err != nil {
		logger.Fatal("invalid operating area", zap.Error(err))
	}

	if err := auth.CheckHash(cfg.JWT.OperatorPasswordHash); err != nil {
		logger.Fatal("invalid operator credentials", zap.Error(err))
	}

	// Repositories
	stationRepo := postgres.NewStationRepo(pool)
	callerRepo := postgres.NewCallerRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)

	// Use cases
	fixSvc := fix.NewService(stationRepo, fix.Config{
		Area:       area,
		MaxRange:   cfg.Fix.MaxRangeMeters,
		LineLength: cfg.Fix.LineLength,
	}, metrics)
	stationSvc := station.NewService(stationRepo)
	callerSvc := caller.NewService(callerRepo, fixSvc)
	convertSvc := convert.NewService()
	authSvc := authUC.NewService(jwtSvc, passwordHasher, cfg.JWT.OperatorPasswordHash)

	routerCfg := server.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authSvc),
		StationHandler: handler.NewStationHandler(stationSvc),
		CallerHandler:  handler.NewCallerHandler(callerSvc),
		FixHandler:     handler.NewFixHandler(fixSvc),
		ConvertHandler: handler.NewConvertHandler(convertSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Metrics:        metrics,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	if cfg.S3.Enabled {
		archive, err := storage.NewS3Archive(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 archive", zap.Error(err))
		}
		exportSvc := export.NewService(callerRepo, archive, cfg.S3.SignedURLExpiry)
		routerCfg.ExportHandler = handler.NewExportHandler(exportSvc)
	}

	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			routerCfg.RateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
		}
	}

	var subscriber *messaging.Subscriber
	if cfg.MQTT.Enabled {
		ingestSvc := ingest.NewService(callerSvc, metrics, logger)
		subscriber = messaging.NewSubscriber(messaging.NewClient(cfg.MQTT, logger), cfg.MQTT, ingestSvc, logger)
		if err := subscriber.Start(ctx); err != nil {
			logger.Fatal("failed to start mqtt subscriber", zap.Error(err))
		}
	}

	router := server.NewRouter(routerCfg)

	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	if subscriber != nil {
		subscriber.Stop()
	}

	logger.Info("server stopped")
}
