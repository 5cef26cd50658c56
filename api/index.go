package handler

import (
	"log"
	"net/http"

	"github.com/arnavshah/fatigue-risk-api/internal/config"
	"github.com/arnavshah/fatigue-risk-api/internal/logging"
	"github.com/arnavshah/fatigue-risk-api/pkg/auth"
	"github.com/arnavshah/fatigue-risk-api/pkg/database"
	"github.com/arnavshah/fatigue-risk-api/pkg/handlers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	config.LoadDotEnv(".env", "../.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
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
	if _, err := authn.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("could not ensure admin user", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	h := handlers.New(db, authn, presets, logger)
	h.DefaultRateLimit = cfg.DefaultRateLimit
	r = handlers.NewRouter(h, "Fatigue Risk Index API (Vercel)")
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
