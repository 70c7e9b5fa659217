// Package main initializes and starts the vault HTTP server, setting up
// configuration, logging, the database connection, repositories, services,
// and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"drivenpass/internal/cipher"
	"drivenpass/internal/config"
	"drivenpass/internal/db"
	"drivenpass/internal/logger"
	"drivenpass/internal/models"
	"drivenpass/internal/repository"
	"drivenpass/internal/server/handler/http"
	"drivenpass/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, .env, and environment configuration.
	// Missing ENCRYPTION_KEY or JWT_SECRET is fatal in there.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// The one cipher value every secret field passes through.
	secretCipher, err := cipher.New(options.EncryptionKey)
	if err != nil {
		zapLogger.Fatal("cannot init cipher", zap.Error(err))
	}

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	sessionRepo := repository.NewPostgresSessionRepository(postgresDB)
	credentialRepo := repository.NewPostgresCredentialRepository(postgresDB)
	networkRepo := repository.NewPostgresNetworkRepository(postgresDB)

	// Initialize business-logic services. The secret service is the same
	// code instantiated once per resource kind.
	tokenService := service.NewTokenService(sessionRepo, []byte(options.JWTSecret))
	userService := service.NewUserService(userRepo, tokenService)
	credentialService := service.NewSecretService[models.Credential](credentialRepo, secretCipher)
	networkService := service.NewSecretService[models.Network](networkRepo, secretCipher)

	// Create HTTP handlers.
	userHandler := &http.UserHandler{UserService: userService}
	credentialHandler := &http.CredentialHandler{CredentialService: credentialService}
	networkHandler := &http.NetworkHandler{NetworkService: networkService}

	// Build the router with middleware and routes.
	router := http.NewRouter(userHandler, credentialHandler, networkHandler, tokenService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
