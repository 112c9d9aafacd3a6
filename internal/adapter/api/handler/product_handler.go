package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
	"swipemall/pkg/errors"
	"swipemall/pkg/response"
	"swipemall/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUseCase: productUseCase}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	priceMax, _ := strconv.ParseFloat(c.QueryParam("priceMax"), 64)

	products, err := h.productUseCase.List(c.Request().Context(), usecase.ProductListParams{
		CategorySlug: c.QueryParam("categorySlug"),
		StoreSlug:    c.QueryParam("storeSlug"),
		PriceMax:     priceMax,
		OnSaleOnly:   c.QueryParam("onSaleOnly") == "true",
		Search:       c.QueryParam("search"),
		Limit:        pagination.Limit,
		Offset:       pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, int64(len(products)), pagination.Limit, pagination.Offset)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	product, err := h.productUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID := c.Get("uid").(string)

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Create(c.Request().Context(), userID, currentRole(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Update(c.Request().Context(), id, userID, currentRole(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.productUseCase.Delete(c.Request().Context(), id, userID, currentRole(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}

type productStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

func (h *ProductHandler) SetStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	var input productStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.SetStatus(c.Request().Context(), id, userID, currentRole(c), input.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListPending(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	pending, err := h.productUseCase.ListPending(c.Request().Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, pending, int64(len(pending)), pagination.Limit, pagination.Offset)
}

func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productUseCase.Approve(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

type rejectProductRequest struct {
	Reason string `json:"reason" validate:"required,min=10"`
}

func (h *ProductHandler) RejectProduct(c echo.Context) error {
	id := c.Param("id")

	var input rejectProductRequest
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Reject(c.Request().Context(), id, input.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
