package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupSwipeRouter(e, authMiddleware)
	SetupFeedRouter(e, authMiddleware)
	SetupPreferenceRouter(e, authMiddleware)
	SetupRecommendationRouter(e, authMiddleware)
	SetupSearchRouter(e, authMiddleware)
	SetupStoreRouter(e, authMiddleware, adminMiddleware)
	SetupCategoryRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
