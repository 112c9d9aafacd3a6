package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupCategoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	categoryHandler := handler.GetCategoryHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:identifier", categoryHandler.GetCategory)

	admin := e.Group("/v1/admin/categories")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.POST("", categoryHandler.CreateCategory)
	admin.PATCH("/:identifier", categoryHandler.UpdateCategory)
	admin.DELETE("/:identifier", categoryHandler.DeleteCategory)
}
