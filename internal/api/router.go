package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/user-service/docs"
	"github.com/99minutos/user-service/internal/api/handler"
	"github.com/99minutos/user-service/internal/api/middleware"
	"github.com/99minutos/user-service/internal/core/ports"
)

const metricsSubsystem = "user_service"

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Accounts ports.AccountService
	Images   ports.ImageService
	Logger   zerolog.Logger

	// ReadinessChecks are run by GET /health/ready, keyed by dependency name.
	ReadinessChecks map[string]handler.DependencyCheck

	// ImageDir is served read-only under ImagePrefix.
	ImageDir    string
	ImagePrefix string

	MaxBodyBytes int64

	// AdminJWTSecret puts GET /user/getAll behind an admin bearer token
	// when non-empty.
	AdminJWTSecret string

	// Registry receives the HTTP metrics. Defaults to the Prometheus
	// default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	if deps.MaxBodyBytes > 0 {
		e.Use(echomiddleware.BodyLimit(strconv.FormatInt(deps.MaxBodyBytes, 10) + "B"))
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	// --- Account routes ---
	userHandler := handler.NewUserHandler(deps.Accounts)
	uploadHandler := handler.NewUploadHandler(deps.Images)

	users := e.Group("/user")
	users.POST("/create", userHandler.Create)
	users.PUT("/edit", userHandler.Edit)
	users.DELETE("/delete", userHandler.Delete)
	users.POST("/login", userHandler.Login)
	users.POST("/uploadImage", uploadHandler.UploadImage)
	if deps.AdminJWTSecret != "" {
		users.GET("/getAll", userHandler.GetAll, middleware.Auth(deps.AdminJWTSecret), middleware.AdminOnly())
	} else {
		users.GET("/getAll", userHandler.GetAll)
	}

	// --- Stored images ---
	if deps.ImageDir != "" && deps.ImagePrefix != "" {
		e.Static(deps.ImagePrefix, deps.ImageDir)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.ReadinessChecks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Error()
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
