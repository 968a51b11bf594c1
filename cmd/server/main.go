// Package main initializes and starts the bookstore HTTP server,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/avoronin/bookstore/internal/config"
	"github.com/avoronin/bookstore/internal/db"
	"github.com/avoronin/bookstore/internal/logger"
	"github.com/avoronin/bookstore/internal/password"
	"github.com/avoronin/bookstore/internal/repository"
	"github.com/avoronin/bookstore/internal/server/handler/http"
	"github.com/avoronin/bookstore/internal/service"
	"github.com/avoronin/bookstore/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, .env, and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The signing key is mandatory configuration; never logged.
	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET_KEY is not set")
	}

	// Initialize PostgreSQL connection.
	postgressDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge soft-deleted books in the background.
	db.StartDeletedBookCleaner(context.Background(), postgressDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgressDB)
	bookRepo := repository.NewPostgresBookRepository(postgressDB)
	orderRepo := repository.NewPostgresOrderRepository(postgressDB)
	statsRepo := repository.NewPostgresStatsRepository(postgressDB)

	// Credential hashing and token issuance.
	hasher := password.NewHasher(options.BcryptCost)
	issuer := token.NewIssuer([]byte(options.JWTSecret), options.TokenTTL)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, hasher, issuer)
	bookService := service.NewBookService(bookRepo)
	orderService := service.NewOrderService(orderRepo)
	statsService := service.NewStatsService(statsRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	bookHandler := &http.BookHandler{BookService: bookService}
	orderHandler := &http.OrderHandler{OrderService: orderService}
	statsHandler := &http.StatsHandler{StatsService: statsService}
	healthHandler := &http.HealthHandler{DB: postgressDB}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, bookHandler, orderHandler,
		statsHandler, healthHandler, issuer, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
