package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	managed := products.Group("")
	managed.Use(authMiddleware.Authenticate, adminMiddleware.ResolveRole)
	managed.POST("", productHandler.CreateProduct)
	managed.PATCH("/:id", productHandler.UpdateProduct)
	managed.DELETE("/:id", productHandler.DeleteProduct)
	managed.PATCH("/:id/status", productHandler.SetStatus)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.GET("/pending", productHandler.ListPending)
	admin.POST("/:id/approve", productHandler.ApproveProduct)
	admin.POST("/:id/reject", productHandler.RejectProduct)
}
