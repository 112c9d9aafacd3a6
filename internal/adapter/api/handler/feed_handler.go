package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/response"
	"swipemall/pkg/utils"
)

type FeedHandler struct {
	feedUseCase *usecase.FeedUseCase
}

func NewFeedHandler(feedUseCase *usecase.FeedUseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	// Exclusion is on unless the client explicitly turns it off.
	excludeSwipedToday := c.QueryParam("excludeSwipedToday") != "false"
	priceMax, _ := strconv.ParseFloat(c.QueryParam("priceMax"), 64)

	result, err := h.feedUseCase.GetFeed(c.Request().Context(), userID, usecase.FeedParams{
		Limit:              pagination.Limit,
		ExcludeSwipedToday: excludeSwipedToday,
		CategorySlug:       c.QueryParam("categorySlug"),
		PriceMax:           priceMax,
		OnSaleOnly:         c.QueryParam("onSaleOnly") == "true",
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *FeedHandler) GetFollowingFeed(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	result, err := h.feedUseCase.FollowingFeed(c.Request().Context(), userID, pagination.Limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
