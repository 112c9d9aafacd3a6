package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupStoreRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	storeHandler := handler.GetStoreHandler()
	followHandler := handler.GetFollowHandler()

	stores := e.Group("/v1/stores")
	stores.GET("", storeHandler.ListStores)
	stores.GET("/:identifier", storeHandler.GetStore)

	// Owner-or-admin surface; role resolution decides which.
	managed := stores.Group("")
	managed.Use(authMiddleware.Authenticate, adminMiddleware.ResolveRole)
	managed.PATCH("/:identifier", storeHandler.UpdateStore)
	managed.GET("/:identifier/analytics", storeHandler.GetAnalytics)
	managed.GET("/:identifier/dashboard", storeHandler.GetDashboard)
	managed.GET("/:identifier/followers", storeHandler.ListFollowers)
	managed.GET("/:identifier/followers/analytics", storeHandler.GetFollowerAnalytics)

	follows := stores.Group("")
	follows.Use(authMiddleware.Authenticate)
	follows.POST("/:identifier/follow", followHandler.FollowStore)
	follows.DELETE("/:identifier/follow", followHandler.UnfollowStore)
	follows.GET("/:identifier/follow/status", followHandler.GetFollowStatus)

	following := e.Group("/v1/following")
	following.Use(authMiddleware.Authenticate)
	following.GET("", followHandler.ListFollowing)

	admin := e.Group("/v1/admin/stores")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	admin.POST("", storeHandler.CreateStore)
	admin.PATCH("/:identifier/verify", storeHandler.SetVerified)
}
