package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/errors"
	"swipemall/pkg/response"
	"swipemall/pkg/utils"
)

type FollowHandler struct {
	followUseCase *usecase.FollowUseCase
}

func NewFollowHandler(followUseCase *usecase.FollowUseCase) *FollowHandler {
	return &FollowHandler{followUseCase: followUseCase}
}

func (h *FollowHandler) FollowStore(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	if identifier == "" {
		return response.Error(c, errors.BadRequest("Store identifier is required", nil))
	}

	follow, err := h.followUseCase.Follow(c.Request().Context(), userID, identifier)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, follow)
}

func (h *FollowHandler) UnfollowStore(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	if identifier == "" {
		return response.Error(c, errors.BadRequest("Store identifier is required", nil))
	}

	if err := h.followUseCase.Unfollow(c.Request().Context(), userID, identifier); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Store unfollowed",
	})
}

func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	identifier := c.Param("identifier")

	following, err := h.followUseCase.IsFollowing(c.Request().Context(), userID, identifier)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"is_following": following,
	})
}

func (h *FollowHandler) ListFollowing(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	following, err := h.followUseCase.ListFollowing(c.Request().Context(), userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, following, int64(len(following)), pagination.Limit, pagination.Offset)
}
