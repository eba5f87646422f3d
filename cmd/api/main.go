package main

import (
	"books-api/internal/config"
	"books-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; deployed environments set real variables.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}
