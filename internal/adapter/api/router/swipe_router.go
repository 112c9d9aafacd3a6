package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupSwipeRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	swipeHandler := handler.GetSwipeHandler()

	swipes := e.Group("/v1/swipes")
	swipes.Use(authMiddleware.Authenticate)
	swipes.POST("", swipeHandler.RecordSwipe, middleware.SwipeRateLimit())
	swipes.GET("/history", swipeHandler.GetHistory)

	analytics := e.Group("/v1/analytics")
	analytics.Use(authMiddleware.Authenticate)
	analytics.GET("/swipes", swipeHandler.GetAnalytics)
}
