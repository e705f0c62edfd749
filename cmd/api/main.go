package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"homefinder/internal/cleanup"
	"homefinder/internal/config"
	"homefinder/internal/database"
	"homefinder/internal/handlers"
	"homefinder/internal/middleware"
	"homefinder/internal/notify"
	"homefinder/internal/ratelimit"
	"homefinder/internal/scheduler"
	"homefinder/internal/snapshot"
	"homefinder/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/homefinder.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging.Level)
	slog.SetDefault(logger)
	logger.Info("configuration loaded", "path", configPath, "db_type", cfg.Database.Type)

	store, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		logger.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	var uploader *storage.S3Uploader
	storageCfg := storage.S3Config{
		Bucket:          getEnvOrConfig(cfg.Storage.Bucket, "S3_BUCKET", ""),
		Region:          getEnvOrConfig(cfg.Storage.Region, "S3_REGION", "us-east-1"),
		Endpoint:        getEnvOrConfig(cfg.Storage.Endpoint, "S3_ENDPOINT", ""),
		AccessKeyID:     getEnvOrConfig(cfg.Storage.AccessKeyID, "S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnvOrConfig(cfg.Storage.SecretAccessKey, "S3_SECRET_ACCESS_KEY", ""),
		PublicBaseURL:   getEnvOrConfig(cfg.Storage.PublicBaseURL, "S3_PUBLIC_BASE_URL", ""),
	}
	if storageCfg.Bucket != "" {
		uploader, err = storage.NewS3Uploader(context.Background(), storageCfg)
		if err != nil {
			logger.Error("failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		logger.Info("object storage ready", "bucket", storageCfg.Bucket)
	} else {
		logger.Warn("object storage not configured, image uploads disabled")
	}

	notifier := notify.New(
		getEnvOrConfig(cfg.Notify.Endpoint, "NOTIFY_ENDPOINT", ""),
		getEnvOrConfig(cfg.Notify.APIKey, "NOTIFY_API_KEY", ""),
		getEnvOrConfig(cfg.Notify.From, "NOTIFY_FROM", ""),
		logger,
	)
	if !notifier.Enabled() {
		logger.Warn("notifications not configured, enquiry emails disabled")
	}

	jwtSecret := getEnvOrConfig(cfg.Auth.JWTSecret, "JWT_SECRET", "")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	limiter := ratelimit.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.Enabled,
	)

	snapshotService := snapshot.NewService(store, logger)
	cleanupService := cleanup.NewService(store, logger)
	sched := scheduler.NewScheduler(snapshotService, cleanupService, cfg, logger)
	if err := sched.Start(); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	r := buildRouter(cfg, store, uploader, notifier, limiter, snapshotService, cleanupService, jwtSecret, logger)

	port := getEnvOrConfig(cfg.Server.Port, "PORT", "8084")
	logger.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      lvl,
		TimeFormat: "2006-01-02 15:04:05",
	}))
}

func openStore(cfg *config.Config, logger *slog.Logger) (database.Store, error) {
	dbType := cfg.Database.Type
	if dbType == "" {
		dbType = getEnv("DB_TYPE", "postgres")
	}

	switch dbType {
	case "mysql":
		logger.Info("using MySQL with GORM")
		mysqlCfg := cfg.Database.MySQL
		portStr := ""
		if mysqlCfg.Port != 0 {
			portStr = strconv.Itoa(mysqlCfg.Port)
		}
		return database.NewGormStore(
			getEnvOrConfig(mysqlCfg.Host, "DB_HOST", "mysql"),
			getEnvOrConfig(portStr, "DB_PORT", "3306"),
			getEnvOrConfig(mysqlCfg.User, "DB_USER", "homefinder_user"),
			getEnvOrConfig(mysqlCfg.Password, "DB_PASSWORD", "homefinder_pass"),
			getEnvOrConfig(mysqlCfg.Database, "DB_NAME", "homefinder_db"),
		)
	case "postgres":
		logger.Info("using PostgreSQL")
		pgCfg := cfg.Database.Postgres
		portStr := ""
		if pgCfg.Port != 0 {
			portStr = strconv.Itoa(pgCfg.Port)
		}
		return database.NewPostgresStore(
			getEnvOrConfig(pgCfg.Host, "DB_HOST", "db"),
			getEnvOrConfig(portStr, "DB_PORT", "5432"),
			getEnvOrConfig(pgCfg.User, "DB_USER", "homefinder_user"),
			getEnvOrConfig(pgCfg.Password, "DB_PASSWORD", "homefinder_pass"),
			getEnvOrConfig(pgCfg.Database, "DB_NAME", "homefinder_db"),
		)
	}
	return nil, fmt.Errorf("unknown database type %q", dbType)
}

func buildRouter(
	cfg *config.Config,
	store database.Store,
	uploader *storage.S3Uploader,
	notifier *notify.Notifier,
	limiter *ratelimit.RateLimiter,
	snapshotService *snapshot.Service,
	cleanupService *cleanup.Service,
	jwtSecret string,
	logger *slog.Logger,
) *gin.Engine {
	propertyHandler := handlers.NewPropertyHandler(store, uploader, logger)
	enquiryHandler := handlers.NewEnquiryHandler(store, notifier, logger)
	savedHandler := handlers.NewSavedHandler(store)
	imageHandler := handlers.NewImageHandler(store, uploader, logger)
	userHandler := handlers.NewUserHandler(store)
	adminHandler := handlers.NewAdminHandler(store, snapshotService, cleanupService, cfg.Retention.ArchivedEnquiryDays)
	seedHandler := handlers.NewSeedHandler(store, logger)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", healthCheck)

	// Public reads. Optional auth lets owners see their own drafts.
	r.GET("/api/properties", propertyHandler.Search)
	r.GET("/api/properties/map", propertyHandler.MapSearch)
	r.GET("/api/properties/:id", middleware.OptionalAuth(jwtSecret), propertyHandler.Get)
	r.GET("/api/users/:id", userHandler.GetProfile)

	authed := r.Group("/api", middleware.RequireAuth(jwtSecret))
	{
		authed.POST("/properties", propertyHandler.Create)
		authed.PATCH("/properties/:id", propertyHandler.Update)
		authed.DELETE("/properties/:id", propertyHandler.Delete)
		authed.GET("/my/properties", propertyHandler.MyProperties)

		authed.POST("/properties/:id/images", limiter.Middleware(), imageHandler.Upload)
		authed.DELETE("/properties/:id/images", imageHandler.Remove)

		authed.POST("/enquiries", limiter.Middleware(), enquiryHandler.Create)
		authed.GET("/enquiries", enquiryHandler.List)
		authed.PATCH("/enquiries/:id", enquiryHandler.UpdateStatus)

		authed.GET("/saved", savedHandler.List)
		authed.POST("/saved/:propertyId", savedHandler.Save)
		authed.DELETE("/saved/:propertyId", savedHandler.Unsave)

		authed.GET("/me", userHandler.Me)
		authed.POST("/me", userHandler.Register)
		authed.PATCH("/me", userHandler.UpdateMe)

		authed.POST("/seed", limiter.Middleware(), seedHandler.SeedCurated)
		authed.POST("/seed/generated", limiter.Middleware(), seedHandler.SeedGenerated)

		admin := authed.Group("/admin")
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/listings", adminHandler.GetListings)
			admin.GET("/stats/history", adminHandler.GetStatsHistory)
			admin.POST("/stats/snapshot", adminHandler.CaptureSnapshot)
			admin.POST("/cleanup", adminHandler.RunCleanup)
			admin.PATCH("/users/:id/role", adminHandler.SetRole)
		}
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns config value if set, otherwise falls back to environment variable, then default
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
