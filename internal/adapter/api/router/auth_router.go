package router

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/adapter/api/handler"
	"swipemall/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register, middleware.AuthRateLimit())
	auth.POST("/login", authHandler.Login, middleware.AuthRateLimit())
	auth.POST("/guest", authHandler.CreateGuestSession, middleware.AuthRateLimit())
	auth.POST("/guest/convert", authHandler.ConvertGuest, middleware.AuthRateLimit())
	auth.POST("/password-reset/request", authHandler.RequestPasswordReset, middleware.AuthRateLimit())
	auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset, middleware.AuthRateLimit())

	authed := auth.Group("")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/profile", authHandler.GetProfile)
	authed.PATCH("/profile", authHandler.UpdateProfile)
}
