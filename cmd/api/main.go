package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/config"
	"github.com/spendtrack/backend/internal/server"
	"github.com/spendtrack/backend/internal/utils"
)

func main() {
	// Bootstrap logger until the configured one takes over
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	// A missing .env file is fine; environment variables may come from anywhere
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("Loaded environment from .env file")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	utils.InitLogger(cfg)
	utils.InitValidator()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server terminated with error")
	}
}
