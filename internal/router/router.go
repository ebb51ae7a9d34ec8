// Package router sets up the gin engine with all middlewares and routes.
package router

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/pocketledger/backend/api"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
)

// This is set at build time via ldflags.
var version = "0.0.0"

// Config sets up the gin engine with all middlewares. The returned teardown
// function must be called before setting up another engine in the same
// process.
func Config() (*gin.Engine, func(), error) {
	r := gin.New()

	// Client IPs are not processed anywhere, so the X-Forwarded-For
	// header does not need to be parsed
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, _ io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	if _, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		pprof.Register(r, "debug/pprof")
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. Client IPs are not processed, therefore
	// nobody needs to be trusted here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, nil, err
	}

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	return r, teardown, nil
}

// AttachRoutes attaches all API routes to the router group.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", v1.GetRoot)
	group.OPTIONS("", v1.OptionsRoot)
	group.GET("/version", v1.GetVersion(version))
	group.OPTIONS("/version", v1.OptionsVersion)
	group.GET("/healthz", v1.GetHealth)
	group.OPTIONS("/healthz", v1.OptionsHealth)

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Title = "Pocketledger"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Pocketledger, a personal finance tracker."
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := group.Group("/v1")
	{
		api.GET("", v1.GetV1)
		api.OPTIONS("", v1.OptionsV1)
	}

	v1.RegisterAccountRoutes(api.Group("/accounts"))
	v1.RegisterTransactionRoutes(api.Group("/transactions"))
	v1.RegisterRecurringRoutes(api.Group("/recurring"))
	v1.RegisterMatchRuleRoutes(api.Group("/match-rules"))
	v1.RegisterSettingsRoutes(api.Group("/settings"))
	v1.RegisterPeriodRoutes(api.Group("/periods"))
	v1.RegisterReportRoutes(api.Group("/reports"))
	v1.RegisterImportRoutes(api.Group("/import"))
}
