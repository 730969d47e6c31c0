package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"jobtracker/internal/auth"
	"jobtracker/internal/cache"
	"jobtracker/internal/config"
	"jobtracker/internal/errors"
	"jobtracker/internal/handler"
	"jobtracker/internal/logger"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// Dependencies are the shared components routes and middleware need.
type Dependencies struct {
	Config       *config.Config
	Logger       *slog.Logger
	DB           *gorm.DB
	Cache        *cache.Client
	JWT          *auth.JWTService
	TokenStore   auth.TokenStoreInterface
	LoginLimiter Limiter
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	deps Dependencies,
	authHandler *handler.AuthHandler,
	jobApplicationHandler *handler.JobApplicationHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(logger.RequestLogger(deps.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     deps.Config.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	e.Validator = NewCustomValidator()

	e.GET("/healthz", healthz(deps.DB, deps.Cache))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := echojwt.WithConfig(echojwt.Config{
		ContextKey:     handler.ClaimsContextKey,
		TokenLookup:    "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + deps.Config.JWT.CookieName,
		ParseTokenFunc: parseToken(deps.JWT, deps.TokenStore),
		ErrorHandler: func(c echo.Context, err error) error {
			return handler.ToHTTPError(errors.ErrUnauthorized)
		},
	})

	// Public routes
	e.POST("/auth/login", authHandler.Login, rateLimit(deps.LoginLimiter, "login"))

	// Secured routes (require JWT authentication)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	applications := e.Group("/job-applications", requireAuth)
	applications.GET("", jobApplicationHandler.List)
	applications.POST("", jobApplicationHandler.Create)
	applications.GET("/statuses", jobApplicationHandler.Statuses)
	applications.GET("/:id", jobApplicationHandler.Get)
	applications.PATCH("/:id", jobApplicationHandler.Update)
	applications.DELETE("/:id", jobApplicationHandler.Delete)
	applications.GET("/:id/history", jobApplicationHandler.History)
}

// parseToken validates the signature and expiry, then rejects revoked tokens.
func parseToken(jwtService *auth.JWTService, tokens auth.TokenStoreInterface) func(echo.Context, string) (interface{}, error) {
	return func(c echo.Context, raw string) (interface{}, error) {
		claims, err := jwtService.ValidateToken(raw)
		if err != nil {
			return nil, err
		}
		revoked, err := tokens.IsAccessTokenRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errors.ErrUnauthorized
		}
		return claims, nil
	}
}

// rateLimit keys requests by client IP. A nil limiter disables limiting.
func rateLimit(limiter Limiter, scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}
			if !limiter.Allow(c.Request().Context(), scope+":"+c.RealIP()) {
				return handler.ToHTTPError(errors.ErrRateLimited)
			}
			return next(c)
		}
	}
}

func healthz(db *gorm.DB, cacheClient *cache.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{"database": "ok", "redis": "ok"}
		status := http.StatusOK

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			checks["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
		// Redis is optional: sessions keep working without revocation checks.
		if err := cacheClient.Ping(ctx); err != nil {
			checks["redis"] = "degraded"
		}
		return c.JSON(status, checks)
	}
}
