package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupFeedRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	feedHandler := handler.GetFeedHandler()

	feed := e.Group("/v1/feed")
	feed.Use(authMiddleware.Authenticate)
	feed.GET("", feedHandler.GetFeed)
	feed.GET("/following", feedHandler.GetFollowingFeed)
}
