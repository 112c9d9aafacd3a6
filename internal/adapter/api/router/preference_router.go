package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupPreferenceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	preferenceHandler := handler.GetPreferenceHandler()

	prefs := e.Group("/v1/preferences")
	prefs.Use(authMiddleware.Authenticate)
	prefs.GET("", preferenceHandler.GetPreferences)
	prefs.PUT("", preferenceHandler.SetPreferences)
}
