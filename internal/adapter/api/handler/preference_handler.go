package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/response"
)

type PreferenceHandler struct {
	preferenceUseCase *usecase.PreferenceUseCase
}

func NewPreferenceHandler(preferenceUseCase *usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{preferenceUseCase: preferenceUseCase}
}

func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID := c.Get("uid").(string)

	prefs, err := h.preferenceUseCase.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prefs)
}

func (h *PreferenceHandler) SetPreferences(c echo.Context) error {
	userID := c.Get("uid").(string)

	var input usecase.SetPreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	prefs, err := h.preferenceUseCase.SetPreferences(c.Request().Context(), userID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prefs)
}
