package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/errors"
	"swipemall/pkg/response"
	"swipemall/pkg/utils"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{storeUseCase: storeUseCase}
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	var input usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.CreateStore(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

func (h *StoreHandler) ListStores(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	stores, err := h.storeUseCase.ListStores(c.Request().Context(), usecase.StoreListParams{
		VerifiedOnly: c.QueryParam("verified") == "true",
		Search:       c.QueryParam("search"),
		Limit:        pagination.Limit,
		Offset:       pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stores, int64(len(stores)), pagination.Limit, pagination.Offset)
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	identifier := c.Param("identifier")
	if identifier == "" {
		return response.Error(c, errors.BadRequest("Store identifier is required", nil))
	}

	store, err := h.storeUseCase.GetStore(c.Request().Context(), identifier)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	var input usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.UpdateStore(c.Request().Context(), identifier, userID, currentRole(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

type verifyStoreRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

func (h *StoreHandler) SetVerified(c echo.Context) error {
	identifier := c.Param("identifier")

	var input verifyStoreRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.SetVerified(c.Request().Context(), identifier, *input.Verified)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *StoreHandler) GetAnalytics(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	analytics, err := h.storeUseCase.Analytics(c.Request().Context(), identifier, userID, currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, analytics)
}

func (h *StoreHandler) GetDashboard(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	dashboard, err := h.storeUseCase.Dashboard(c.Request().Context(), identifier, userID, currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dashboard)
}

func (h *StoreHandler) ListFollowers(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")
	pagination := utils.GetPaginationParams(c)

	followers, err := h.storeUseCase.ListFollowers(c.Request().Context(), identifier, userID, currentRole(c), pagination.Limit, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, followers, int64(len(followers)), pagination.Limit, pagination.Offset)
}

func (h *StoreHandler) GetFollowerAnalytics(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	period := c.QueryParam("period")
	if period == "" {
		period = "30d"
	}

	analytics, err := h.storeUseCase.FollowerAnalytics(c.Request().Context(), identifier, userID, currentRole(c), period)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, analytics)
}
