package main

import (
	"os"

	"github.com/placement/studentms/internal/pkg/logger"
	"github.com/placement/studentms/internal/server"
)

// @title Student Management API
// @version 1.0
// @description REST API for managing student records and admin accounts
// @BasePath /api/v1
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
