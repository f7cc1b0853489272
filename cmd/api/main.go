package main

import (
	"os"

	"github.com/mgdelacruz/regisys/internal/pkg/logger"
	"github.com/mgdelacruz/regisys/internal/server"
)

// @title Regisys API
// @version 1.0
// @description Student records API for the registrar portal

// @host localhost:4000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by /login or /google-login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
