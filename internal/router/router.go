package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/handler"
	"github.com/northcoast-bjj/academy-api/internal/middleware"
	"github.com/northcoast-bjj/academy-api/internal/ratelimit"
	"github.com/northcoast-bjj/academy-api/internal/service"
	"github.com/northcoast-bjj/academy-api/pkg/config"
	"github.com/northcoast-bjj/academy-api/pkg/logger"
	corsmiddleware "github.com/northcoast-bjj/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/northcoast-bjj/academy-api/pkg/middleware/requestid"
)

// Dependencies collects everything the HTTP surface needs.
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Limiter *ratelimit.Limiter
	Metrics *service.MetricsService
	Auth    *service.AuthService

	Schedule    *handler.ScheduleHandler
	Leads       *handler.LeadHandler
	Content     *handler.ContentHandler
	AuthHandler *handler.AuthHandler

	// Readiness probes; nil probes are skipped.
	DBPing    func() error
	CachePing func() error
}

// New assembles the gin engine: middleware chain, probes, public content
// routes, rate-limited form routes and the JWT-protected admin group.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if deps.DBPing != nil {
			if err := deps.DBPing(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "database"})
				return
			}
		}
		if deps.CachePing != nil {
			if err := deps.CachePing(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "cache"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Public content, served with Cache-Control headers.
	api.GET("/schedule", deps.Schedule.Week)
	api.GET("/schedule/kids", deps.Schedule.KidsGroups)
	api.GET("/schedule/slots", deps.Schedule.TimeSlots)
	api.GET("/schedule/saturday", deps.Schedule.Saturday)
	api.GET("/schedule/hours", deps.Schedule.BusinessHours)
	api.GET("/instructors", deps.Content.Instructors)
	api.GET("/achievements", deps.Content.Achievements)
	api.GET("/reviews", deps.Content.Reviews)

	// Form submissions share one per-client budget.
	forms := api.Group("")
	forms.Use(middleware.RateLimit(deps.Limiter, deps.Metrics))
	forms.POST("/contact", deps.Leads.SubmitContact)
	forms.POST("/exit-intent", deps.Leads.SubmitExitIntent)
	forms.POST("/kids-trial", deps.Leads.SubmitKidsTrial)

	api.POST("/auth/login", deps.AuthHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(deps.Auth))
	admin.GET("/leads", deps.Leads.List)
	admin.GET("/leads/export", deps.Leads.Export)
	api.GET("/auth/me", middleware.JWT(deps.Auth), deps.AuthHandler.Me)

	return r
}
