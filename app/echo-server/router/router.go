package router

import (
	"driverStamps/internal/rest"
	"driverStamps/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupConsoleRoutes(e *echo.Echo, api *echo.Group, handler *rest.ConsoleHandler, session echo.MiddlewareFunc) {
	e.GET("/driver", handler.Page, session)
	e.StaticFS("/static", view.Static())

	con := api.Group("/console", session)
	con.GET("/state", handler.State)
	con.POST("/query", handler.Query)
	con.POST("/select", handler.Select)
	con.POST("/clear", handler.Clear)
	con.POST("/stamps", handler.AssignStamps)
	con.POST("/refresh", handler.Refresh)
}

func SetupIdentityRoutes(api *echo.Group, handler *rest.IdentityHandler) {
	identities := api.Group("/identities")
	identities.GET("/search", handler.Search)
}

func SetupStampRoutes(api *echo.Group, stampHandler *rest.StampHandler, movementHandler *rest.MovementHandler) {
	api.POST("/stamps", stampHandler.AssignStamps)
	api.GET("/movements", movementHandler.Recent)
}

func SetupLoyaltyCardRoutes(e *echo.Echo, api *echo.Group, handler *rest.LoyaltyCardHandler) {
	e.GET("/loyalty-card", handler.Page)
	api.GET("/loyalty-card", handler.View)
}

func SetupOpsRoutes(e *echo.Echo, health *rest.HealthHandler) {
	e.GET("/health", health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
