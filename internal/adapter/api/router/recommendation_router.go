package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupRecommendationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	recommendationHandler := handler.GetRecommendationHandler()

	recommendations := e.Group("/v1/recommendations")
	recommendations.Use(authMiddleware.Authenticate)
	recommendations.GET("/stores", recommendationHandler.RecommendStores)
}
