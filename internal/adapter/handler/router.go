package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/kimdohyun-dev/actionlog/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	authHandler    *Auth
	summaryHandler *SummaryHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authHandler *Auth, summaryHandler *SummaryHandler) *Router {
	return &Router{
		cfg:            cfg,
		authHandler:    authHandler,
		summaryHandler: summaryHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// OpenAPI UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	rt.setupAuthRoutes(api)
	rt.setupSummaryRoutes(api)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/signup", rt.authHandler.Signup)
	authGroup.POST("/login", rt.authHandler.Login)
}

// setupSummaryRoutes configures the summarize pipeline and history routes
func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	g.POST("/summarize", rt.summaryHandler.Summarize)
	g.GET("/summaries/me", rt.summaryHandler.History)
	g.DELETE("/summaries/:id", rt.summaryHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
