package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/response"
	"swipemall/pkg/utils"
)

type SwipeHandler struct {
	swipeUseCase *usecase.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *usecase.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{swipeUseCase: swipeUseCase}
}

func (h *SwipeHandler) RecordSwipe(c echo.Context) error {
	userID := c.Get("uid").(string)

	var input usecase.RecordSwipeInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	swipe, err := h.swipeUseCase.RecordSwipe(c.Request().Context(), userID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, swipe)
}

func (h *SwipeHandler) GetHistory(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	filter := usecase.SwipeHistoryFilter{
		Action:       c.QueryParam("action"),
		CategorySlug: c.QueryParam("categorySlug"),
		StoreSlug:    c.QueryParam("storeSlug"),
	}

	history, err := h.swipeUseCase.ListHistory(c.Request().Context(), userID, filter, pagination.Limit, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, history, int64(len(history)), pagination.Limit, pagination.Offset)
}

func (h *SwipeHandler) GetAnalytics(c echo.Context) error {
	userID := c.Get("uid").(string)

	period := c.QueryParam("period")
	if period == "" {
		period = "7d"
	}

	analytics, err := h.swipeUseCase.Analytics(c.Request().Context(), userID, period)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, analytics)
}
