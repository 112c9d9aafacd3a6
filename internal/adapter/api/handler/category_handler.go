package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/errors"
	"swipemall/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUseCase: categoryUseCase}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	// Admins can ask for inactive categories too.
	activeOnly := c.QueryParam("includeInactive") != "true"

	categories, err := h.categoryUseCase.List(c.Request().Context(), activeOnly)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	identifier := c.Param("identifier")
	if identifier == "" {
		return response.Error(c, errors.BadRequest("Category identifier is required", nil))
	}

	category, err := h.categoryUseCase.Get(c.Request().Context(), identifier)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	identifier := c.Param("identifier")

	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Update(c.Request().Context(), identifier, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	identifier := c.Param("identifier")

	if err := h.categoryUseCase.Delete(c.Request().Context(), identifier); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Category deleted",
	})
}
