package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"sidehustle/docs" // swagger docs
	"sidehustle/internal/auth"
	"sidehustle/internal/cache"
	"sidehustle/internal/config"
	"sidehustle/internal/db"
	"sidehustle/internal/handler"
	"sidehustle/internal/logger"
	"sidehustle/internal/repository"
	"sidehustle/internal/router"
	"sidehustle/internal/service"
)

// @title Side Hustle Hub API
// @version 1.0
// @description Side-hustle catalog with public browsing, admin editing and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, err := db.NewMongo(ctx, cfg.MongoURI, cfg.StoreTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	database := mongoClient.Database(cfg.MongoDatabase)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(database.Collection(db.CollectionSideHustles))
	adminRepo := repository.NewAdminRepository(database.Collection(db.CollectionUsers))

	// Audit trail is optional
	audit := service.NewNopAuditRecorder()
	if cfg.MySQLDSN != "" {
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("audit database init")
		}
		audit = service.NewAuditRecorder(repository.NewAuditLogRepository(gormDB))
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin, adminRepo, jwtService, tokenStore, cfg.StoreTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("auth service init")
	}
	catalogService := service.NewCatalogService(entryRepo, cfg.StoreTimeout)

	if !cfg.Admin.Enabled() {
		log.Warn().Msg("ADMIN_EMAIL or admin password not set, only stored identities can sign in")
	}
	if cfg.UsesDefaultJWTSecret() {
		log.Warn().Msg("JWT_SECRET not set, tokens are signed with the default key; set it before deploying")
	}

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, audit)
	authHandler := handler.NewAuthHandler(authService, audit, jwtService.Expiry(), cfg.CookieSecure)
	seedHandler := handler.NewSeedHandler(entryRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Register routes
	router.Register(e, cfg, authService, catalogHandler, authHandler, seedHandler)

	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
		if strings.HasPrefix(cfg.SwaggerHost, "https://") {
			docs.SwaggerInfo.Schemes = []string{"https"}
		}
	}
	log.Info().Str("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	audit.Close()
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	if err := cacheClient.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
