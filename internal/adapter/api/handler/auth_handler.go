package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.authUseCase.Logout(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.authUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type passwordResetRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input passwordResetRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.RequestPasswordReset(c.Request().Context(), input.PhoneNumber); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "If the phone number is registered, a reset code has been sent",
	})
}

func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var input usecase.ConfirmPasswordResetInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.ConfirmPasswordReset(c.Request().Context(), input); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password has been reset",
	})
}

func (h *AuthHandler) CreateGuestSession(c echo.Context) error {
	result, err := h.authUseCase.CreateGuestSession(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

type convertGuestRequest struct {
	GuestID string `json:"guestId" validate:"required"`
	usecase.RegisterInput
}

func (h *AuthHandler) ConvertGuest(c echo.Context) error {
	var input convertGuestRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.ConvertGuest(c.Request().Context(), input.GuestID, input.RegisterInput)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}
