package http

import (
	"log/slog"
	"net/http"

	_ "fooddelivery/docs" // registers the document served under /swagger
	"fooddelivery/internal/adapters/out/metrics"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to the Food Delivery Backend!"

// RouterConfig carries what NewRouter needs beyond the API server itself.
type RouterConfig struct {
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	// RateLimitRPS limits requests per client IP and second. Zero disables it.
	RateLimitRPS float64
}

// NewRouter builds the echo instance: middleware, the API routes and the
// operational endpoints (/, /health, /metrics, /openapi.json, /swagger).
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.ERROR)
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	operational := []string{"/health", "/metrics"}

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware(operational...))
	}
	if cfg.RateLimitRPS > 0 {
		e.Use(RateLimiter(cfg.RateLimitRPS, operational...))
	}
	e.Use(validator)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, WelcomeMessage)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
