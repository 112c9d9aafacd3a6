package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/errors"
	"swipemall/pkg/response"
)

type SearchHandler struct {
	searchUseCase *usecase.SearchUseCase
}

func NewSearchHandler(searchUseCase *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

// Search works with or without authentication; only authenticated callers
// get their query recorded to history.
func (h *SearchHandler) Search(c echo.Context) error {
	userID, _ := c.Get("uid").(string)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	priceMax, _ := strconv.ParseFloat(c.QueryParam("priceMax"), 64)

	result, err := h.searchUseCase.Search(c.Request().Context(), userID, usecase.SearchParams{
		Query:        c.QueryParam("query"),
		Type:         c.QueryParam("type"),
		Limit:        limit,
		CategorySlug: c.QueryParam("categorySlug"),
		StoreSlug:    c.QueryParam("storeSlug"),
		PriceMax:     priceMax,
		OnSaleOnly:   c.QueryParam("onSaleOnly") == "true",
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"results": result,
	})
}

func (h *SearchHandler) GetHistory(c echo.Context) error {
	userID := c.Get("uid").(string)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	history, err := h.searchUseCase.ListHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"history": history,
	})
}

func (h *SearchHandler) DeleteHistoryEntry(c echo.Context) error {
	userID := c.Get("uid").(string)
	entryID := c.Param("id")

	if entryID == "" {
		return response.Error(c, errors.BadRequest("History entry ID is required", nil))
	}

	if err := h.searchUseCase.DeleteHistoryEntry(c.Request().Context(), userID, entryID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Search history entry deleted",
	})
}

func (h *SearchHandler) ClearHistory(c echo.Context) error {
	userID := c.Get("uid").(string)

	deleted, err := h.searchUseCase.ClearHistory(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"deleted": deleted,
	})
}
