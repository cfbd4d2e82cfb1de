package router

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"sidehustle/internal/config"
	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/handler"
	"sidehustle/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	catalogHandler *handler.CatalogHandler,
	authHandler *handler.AuthHandler,
	seedHandler *handler.SeedHandler,
) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RequestID())
	e.Use(RequestLogger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	requireToken := echojwt.WithConfig(authConfig(authService, false))
	optionalToken := echojwt.WithConfig(authConfig(authService, true))

	// Public routes
	api.GET("/side-hustles", catalogHandler.List, optionalToken)
	api.GET("/side-hustles/:id", catalogHandler.Get)
	api.GET("/categories", catalogHandler.Categories)
	api.POST("/auth/login", authHandler.Login, LoginLimiter(cfg.LoginRate, cfg.LoginBurst))
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes. The token check is per route so unknown /api paths still 404.
	api.GET("/auth/me", authHandler.Me, requireToken)
	api.POST("/side-hustles", catalogHandler.Create, requireToken)
	api.PUT("/side-hustles/:id", catalogHandler.Update, requireToken)
	api.DELETE("/side-hustles/:id", catalogHandler.Delete, requireToken, RequireAdmin)
	api.POST("/seed", seedHandler.Seed, requireToken, RequireAdmin)
}

// authConfig reads the token from the bearer header, then the auth cookie, and verifies it
// through authService so revoked tokens are rejected. When optional is set a missing or bad
// token lets the request through without an identity.
func authConfig(authService service.AuthService, optional bool) echojwt.Config {
	return echojwt.Config{
		ContextKey:  handler.ContextKeyClaims,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := authService.VerifyToken(c.Request().Context(), token)
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if optional {
				return nil
			}
			if handler.PresentedToken(c) == "" {
				return apperrors.ErrUnauthorized
			}
			return apperrors.ErrInvalidToken
		},
		ContinueOnIgnoredError: optional,
	}
}

// LoginLimiter throttles login attempts per client IP. A non-positive rate disables it.
func LoginLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst < 1 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 10 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.NewHTTPError(http.StatusForbidden, "client not identified")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			log.Ctx(c.Request().Context()).Warn().Str("ip", identifier).Msg("login rate limited")
			return apperrors.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
	})
}

// RequireAdmin rejects principals without the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := handler.PrincipalFrom(c)
		if !ok {
			return apperrors.ErrUnauthorized
		}
		if !p.IsAdmin() {
			return apperrors.ErrForbidden
		}
		return next(c)
	}
}

// RequestLogger attaches a request-scoped zerolog logger to the request context and
// logs one line per request.
func RequestLogger() echo.MiddlewareFunc {
	logRequest := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := log.Ctx(c.Request().Context())
			event := logger.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := logRequest(next)
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			ctx := log.With().Str("request_id", id).Logger().WithContext(req.Context())
			c.SetRequest(req.WithContext(ctx))
			return logged(c)
		}
	}
}

// ErrorHandler renders every error in the response envelope. Internal details are logged,
// never returned.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var message string

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			err = he.Internal
		}
	} else {
		httpErr := apperrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		message = httpErr.Message
	}

	if status >= http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Path()).Msg("request failed")
		message = "internal server error"
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, apperrors.Fail(message))
	}
	if err != nil {
		log.Ctx(c.Request().Context()).Error().Err(err).Msg("write error response")
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			return f.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
