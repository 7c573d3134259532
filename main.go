package main

import (
	"fmt"
	stdlog "log"

	"github.com/gin-gonic/gin"

	"webchat/internal/api"
	"webchat/internal/config"
	"webchat/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config not loaded: %v", err)
	}

	log := logger.New(cfg.Log)

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database not initialized")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("database ready")

	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(cfg, db, log, "templates/*.html", "templates/static")

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
