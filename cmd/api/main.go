package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ecan/pathways/internal/pkg/logger"
	"github.com/ecan/pathways/internal/server"
)

// @title Pathways API
// @version 1.0
// @description Course recommendation and degree planning API

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load .env if present; the Gemini key usually lives there. Absence of
	// the file or the key only switches narration to heuristic mode.
	_ = godotenv.Load()

	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
