package main

import (
	"rentacar/config"
	"rentacar/di"
	"rentacar/helper"
	"rentacar/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title RentACar API
// @version 1.0
// @description Car search and booking.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
