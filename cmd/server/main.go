package main

import (
	"teamvote/internal/config"
	"teamvote/internal/db"
	"teamvote/internal/router"
	"teamvote/internal/session"
	"teamvote/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Configure(cfg.LogLevel)

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	codec := session.NewCodec(cfg.SessionSecret)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	router.RegisterRoutes(r, cfg, codec)

	log.Info().Str("port", cfg.Port).Msg("teamvote server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
