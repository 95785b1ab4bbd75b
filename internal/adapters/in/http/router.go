package http

import (
	"encoding/json"
	"net/http"
	"sync"

	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// APIPrefix is the base path of every business endpoint.
const APIPrefix = "/api/v1"

type RouterConfig struct {
	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables limiting.
	RateLimit float64
	RateBurst int
	LogLevel  log.Lvl
}

// NewRouter wires the server, the request validator, the rate limiter and the
// operational endpoints (/health, /metrics, /swagger/*) into an echo
// instance.
func NewRouter(server *Server, m *metrics.Metrics, logger *zap.Logger, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger, APIPrefix)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(Metrics(m))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: func(ctx echo.Context) bool {
				return ctx.Path() == "/health" || ctx.Path() == "/metrics"
			},
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.RateLimit),
				Burst: cfg.RateBurst,
			}),
		}))
	}

	e.Use(validator)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var registerOnce sync.Once

// registerSwaggerDoc publishes the embedded document to echo-swagger, which
// serves it at /swagger/doc.json.
func registerSwaggerDoc(swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})
	return nil
}
