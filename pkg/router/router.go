package router

import (
	"errors"
	"net/http"

	docs "github.com/gessotrack/backend/api"
	"github.com/gessotrack/backend/pkg/config"
	"github.com/gessotrack/backend/pkg/controllers/healthz"
	"github.com/gessotrack/backend/pkg/controllers/root"
	v1 "github.com/gessotrack/backend/pkg/controllers/v1"
	"github.com/gessotrack/backend/pkg/controllers/version"
	"github.com/gessotrack/backend/pkg/httputil"
	"github.com/gessotrack/backend/pkg/reconcile"
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
)

// This is set at build time with -ldflags.
var appVersion = "0.0.0"

// Config sets up the gin engine with all middlewares.
//
// The returned teardown function unregisters the Prometheus metrics and must
// be called before Config is called again in the same process.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	if cfg.APIURL == nil {
		return nil, func() {}, errors.New("the API URL must be set")
	}

	r := gin.New()

	// Client IPs are not used
	r.ForwardedByClientIP = false

	r.HandleMethodNotAllowed = true

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.HTTPError{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.HTTPError{
			Error: "there is no resource at this path",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORSOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Route printing clutters logs and test logs
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// No proxy is trusted as client IPs are not used
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", appVersion).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "GessoTrack"
	docs.SwaggerInfo.Version = appVersion
	docs.SwaggerInfo.Description = "Project cost and budget reconciliation for gypsum works: cost entries, material stock and project financials."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config allows to attach it to different paths.
func AttachRoutes(group *gin.RouterGroup, cfg config.Config, db healthz.Pinger, orchestrator *reconcile.Orchestrator) {
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), appVersion)
	healthz.RegisterRoutes(group.Group("/healthz"), db)

	v1.Controller{Orchestrator: orchestrator}.RegisterRoutes(group.Group("/v1"))
}
