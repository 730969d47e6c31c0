package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobtracker/docs"
	"jobtracker/internal/auth"
	"jobtracker/internal/cache"
	"jobtracker/internal/config"
	"jobtracker/internal/db"
	"jobtracker/internal/handler"
	"jobtracker/internal/logger"
	"jobtracker/internal/ratelimit"
	"jobtracker/internal/repository"
	"jobtracker/internal/router"
	"jobtracker/internal/service"
)

// @title Job Application Tracker API
// @version 1.0
// @description Multi-tenant job application tracker with status history and JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Init(cfg.LogLevel)

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN, log)
	if err != nil {
		return err
	}
	if cfg.Database.Reset {
		log.Warn("DATABASE_RESET=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	redisClient := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	cacheClient := cache.New(redisClient)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn("redis unavailable, token revocation disabled", slog.String("error", err.Error()))
	}

	loginLimiter, err := ratelimit.NewFixedWindowLimiter(redisClient, "jobtracker:ratelimit", cfg.RateLimit.LoginPerMinute, time.Minute)
	if err != nil {
		return err
	}

	// Initialize repositories
	users := repository.NewUserRepository(gormDB)
	applications := repository.NewJobApplicationRepository(gormDB)
	history := repository.NewHistoryRepository(gormDB)
	uow := repository.NewUnitOfWork(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(users, jwtService, tokenStore, log)
	jobApplicationService := service.NewJobApplicationService(uow, applications, history, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, handler.CookieConfig{
		Name:   cfg.JWT.CookieName,
		Secure: cfg.IsProduction(),
	})
	jobApplicationHandler := handler.NewJobApplicationHandler(jobApplicationService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Dependencies{
		Config:       cfg,
		Logger:       log,
		DB:           gormDB,
		Cache:        cacheClient,
		JWT:          jwtService,
		TokenStore:   tokenStore,
		LoginLimiter: loginLimiter,
	}, authHandler, jobApplicationHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info("swagger documentation available", slog.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		log.Info("server listening", slog.String("addr", addr), slog.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
