package main

import (
	"os"

	"github.com/kaan/stucomas/internal/pkg/logger"
	"github.com/kaan/stucomas/internal/server"
)

// @title StuCoMaS API
// @version 1.0
// @description Student course management service: students, instructors, courses, enrollments and grades

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal is received
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
