package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arnavshah/fatigue-risk-api/internal/config"
	"github.com/arnavshah/fatigue-risk-api/internal/logging"
	"github.com/arnavshah/fatigue-risk-api/pkg/auth"
	"github.com/arnavshah/fatigue-risk-api/pkg/database"
	"github.com/arnavshah/fatigue-risk-api/pkg/handlers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	config.LoadDotEnv(config.DefaultEnvPaths...)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	presets, err := config.LoadPresets(cfg.PresetsFile)
	if err != nil {
		logger.Fatal("could not load presets", zap.Error(err))
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("could not open database", zap.Error(err))
	}

	authn := auth.New(cfg.JWTSecret, cfg.APIMasterSecret)
	if created, err := authn.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("could not ensure admin user", zap.Error(err))
	} else if created {
		logger.Info("default admin user created", zap.String("username", cfg.AdminUsername))
	}
	if cfg.JWTSecret == "" || cfg.APIMasterSecret == "" {
		logger.Warn("JWT_SECRET or API_MASTER_SECRET is empty; tokens and keys are not secure")
	}

	h := handlers.New(db, authn, presets, logger)
	h.DefaultRateLimit = cfg.DefaultRateLimit
	r := handlers.NewRouter(h, "Fatigue Risk Index API")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.PresetsFile != "" {
		pw, err := config.WatchPresets(cfg.PresetsFile, logger)
		if err != nil {
			logger.Warn("presets will not reload", zap.String("path", cfg.PresetsFile), zap.Error(err))
		} else {
			go func() { _ = pw.Run(ctx, h.SetPresets) }()
		}
	}

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Int("roles", len(presets.Roles)),
		zap.Bool("default_params", presets.Defaults != nil))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("could not run server", zap.Error(err))
		os.Exit(1)
	}
}
