package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupSearchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	searchHandler := handler.GetSearchHandler()

	// Search itself works anonymously; history needs a full account.
	e.GET("/v1/search", searchHandler.Search, authMiddleware.OptionalAuth)

	history := e.Group("/v1/search/history")
	history.Use(authMiddleware.Authenticate)
	history.GET("", searchHandler.GetHistory)
	history.DELETE("/:id", searchHandler.DeleteHistoryEntry)
	history.DELETE("", searchHandler.ClearHistory)
}
