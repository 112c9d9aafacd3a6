package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/response"
)

type RecommendationHandler struct {
	recommendationUseCase *usecase.RecommendationUseCase
}

func NewRecommendationHandler(recommendationUseCase *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{recommendationUseCase: recommendationUseCase}
}

func (h *RecommendationHandler) RecommendStores(c echo.Context) error {
	userID := c.Get("uid").(string)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.recommendationUseCase.RecommendStores(c.Request().Context(), userID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
