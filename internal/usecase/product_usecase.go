package usecase

import (
	"context"
	"strings"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
	"swipemall/pkg/logger"
)

const minRejectionReasonLen = 10

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
	}
}

type ProductListParams struct {
	CategorySlug string
	StoreSlug    string
	PriceMax     float64
	OnSaleOnly   bool
	Search       string
	Limit        int
	Offset       int
}

// List returns active products only; price, sale and text filters are
// applied in memory after the indexed query.
func (u *ProductUseCase) List(ctx context.Context, params ProductListParams) ([]*entity.Product, error) {
	limit := params.Limit
	offset := params.Offset
	inMemoryFilter := params.PriceMax > 0 || params.OnSaleOnly || params.Search != ""
	if inMemoryFilter {
		limit = searchFetchSize
		offset = 0
	}

	products, err := u.productRepo.List(ctx, repository.ProductFilter{
		Status:       entity.ProductStatusActive,
		CategorySlug: params.CategorySlug,
		StoreSlug:    params.StoreSlug,
	}, limit, offset)
	if err != nil {
		return nil, err
	}

	if !inMemoryFilter {
		return products, nil
	}

	query := strings.ToLower(strings.TrimSpace(params.Search))
	matched := []*entity.Product{}
	for _, product := range products {
		if params.PriceMax > 0 && product.EffectivePrice() > params.PriceMax {
			continue
		}
		if params.OnSaleOnly && !product.IsOnSale {
			continue
		}
		if query != "" && !containsFold(query, product.Name, product.Description) {
			continue
		}
		matched = append(matched, product)
		if params.Limit > 0 && len(matched) == params.Limit {
			break
		}
	}

	return matched, nil
}

// Get returns an active product and bumps its view counter in the
// background; a lost view never fails the read.
func (u *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Status != entity.ProductStatusActive {
		return nil, errors.NotFound("Product", nil)
	}

	go func() {
		viewCtx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := u.productRepo.IncrementViews(viewCtx, product.ID); err != nil {
			logger.Warn("Failed to increment views for product %s: %v", product.ID, err)
		}
	}()

	return product, nil
}

type CreateProductInput struct {
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Description     string   `json:"description" validate:"required"`
	Image           string   `json:"image" validate:"required,url"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	IsOnSale        bool     `json:"isOnSale"`
	SalePrice       float64  `json:"salePrice" validate:"omitempty,gt=0"`
	AvailableSizes  []string `json:"availableSizes"`
	AvailableColors []string `json:"availableColors"`
	StockAmount     int      `json:"stockAmount" validate:"omitempty,min=0"`
	StoreSlug       string   `json:"storeSlug" validate:"required"`
	CategorySlug    string   `json:"categorySlug" validate:"required"`
}

// Create submits a product for review. Every new product starts pending and
// becomes visible only after an admin approves it.
func (u *ProductUseCase) Create(ctx context.Context, userID, role string, input CreateProductInput) (*entity.Product, error) {
	store, err := u.storeRepo.GetBySlugOrID(ctx, input.StoreSlug)
	if err != nil {
		return nil, err
	}
	if role != "admin" && store.OwnerID != userID {
		return nil, errors.Forbidden("You do not manage this store", nil)
	}

	category, err := u.categoryRepo.GetBySlugOrID(ctx, input.CategorySlug)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, errors.BadRequest("Category is not active", nil)
	}

	if input.IsOnSale && input.SalePrice >= input.Price {
		return nil, errors.BadRequest("Sale price must be below the regular price", nil)
	}

	product := &entity.Product{
		Name:            input.Name,
		Description:     input.Description,
		Image:           input.Image,
		Price:           input.Price,
		IsOnSale:        input.IsOnSale,
		SalePrice:       input.SalePrice,
		AvailableSizes:  input.AvailableSizes,
		AvailableColors: input.AvailableColors,
		StockAmount:     input.StockAmount,
		Status:          entity.ProductStatusPending,
		StoreSlug:       store.Slug,
		StoreID:         store.ID,
		CategorySlug:    category.Slug,
		CategoryID:      category.ID,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

type UpdateProductInput struct {
	Name            string   `json:"name" validate:"omitempty,min=2,max=120"`
	Description     string   `json:"description"`
	Image           string   `json:"image" validate:"omitempty,url"`
	Price           float64  `json:"price" validate:"omitempty,gt=0"`
	IsOnSale        *bool    `json:"isOnSale"`
	SalePrice       float64  `json:"salePrice" validate:"omitempty,gt=0"`
	AvailableSizes  []string `json:"availableSizes"`
	AvailableColors []string `json:"availableColors"`
	StockAmount     *int     `json:"stockAmount" validate:"omitempty,min=0"`
}

// Update edits a product. Changes a shopper would notice (name, description,
// image, price) send an approved product back through review.
func (u *ProductUseCase) Update(ctx context.Context, id, userID, role string, input UpdateProductInput) (*entity.Product, error) {
	product, err := u.authorizeProduct(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}

	significant := false

	if input.Name != "" && input.Name != product.Name {
		product.Name = input.Name
		significant = true
	}
	if input.Description != "" && input.Description != product.Description {
		product.Description = input.Description
		significant = true
	}
	if input.Image != "" && input.Image != product.Image {
		product.Image = input.Image
		significant = true
	}
	if input.Price > 0 && input.Price != product.Price {
		product.Price = input.Price
		significant = true
	}
	if input.IsOnSale != nil {
		product.IsOnSale = *input.IsOnSale
	}
	if input.SalePrice > 0 {
		product.SalePrice = input.SalePrice
	}
	if input.AvailableSizes != nil {
		product.AvailableSizes = input.AvailableSizes
	}
	if input.AvailableColors != nil {
		product.AvailableColors = input.AvailableColors
	}
	if input.StockAmount != nil {
		product.StockAmount = *input.StockAmount
	}

	if product.IsOnSale && product.SalePrice >= product.Price {
		return nil, errors.BadRequest("Sale price must be below the regular price", nil)
	}

	if significant {
		product.Status = entity.ProductStatusPending
		product.IsApproved = false
		product.RejectionReason = ""
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id, userID, role string) error {
	if _, err := u.authorizeProduct(ctx, id, userID, role); err != nil {
		return err
	}

	return u.productRepo.Delete(ctx, id)
}

// SetStatus toggles an approved product between active and inactive.
func (u *ProductUseCase) SetStatus(ctx context.Context, id, userID, role, status string) (*entity.Product, error) {
	if status != entity.ProductStatusActive && status != entity.ProductStatusInactive {
		return nil, errors.BadRequest("Status must be active or inactive", nil)
	}

	product, err := u.authorizeProduct(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}

	if !product.IsApproved {
		return nil, errors.BadRequest("Product has not been approved yet", nil)
	}

	if err := u.productRepo.UpdateFields(ctx, id, map[string]interface{}{
		"status": status,
	}); err != nil {
		return nil, err
	}

	product.Status = status
	return product, nil
}

type PendingProduct struct {
	Product      *entity.Product `json:"product"`
	StoreName    string          `json:"store_name"`
	CategoryName string          `json:"category_name"`
}

// ListPending returns the review queue oldest-first with store and category
// names joined for the admin UI.
func (u *ProductUseCase) ListPending(ctx context.Context, limit, offset int) ([]*PendingProduct, error) {
	products, err := u.productRepo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	storeNames := map[string]string{}
	categoryNames := map[string]string{}

	pending := make([]*PendingProduct, 0, len(products))
	for _, product := range products {
		if _, ok := storeNames[product.StoreID]; !ok {
			storeNames[product.StoreID] = ""
			if store, err := u.storeRepo.GetByID(ctx, product.StoreID); err == nil {
				storeNames[product.StoreID] = store.Name
			}
		}
		if _, ok := categoryNames[product.CategoryID]; !ok {
			categoryNames[product.CategoryID] = ""
			if category, err := u.categoryRepo.GetByID(ctx, product.CategoryID); err == nil {
				categoryNames[product.CategoryID] = category.Name
			}
		}

		pending = append(pending, &PendingProduct{
			Product:      product,
			StoreName:    storeNames[product.StoreID],
			CategoryName: categoryNames[product.CategoryID],
		})
	}

	return pending, nil
}

func (u *ProductUseCase) Approve(ctx context.Context, id string) (*entity.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Status != entity.ProductStatusPending {
		return nil, errors.BadRequest("Only pending products can be approved", nil)
	}

	err = u.productRepo.UpdateFields(ctx, id, map[string]interface{}{
		"status":          entity.ProductStatusActive,
		"isApproved":      true,
		"rejectionReason": "",
	})
	if err != nil {
		return nil, err
	}

	return u.productRepo.GetByID(ctx, id)
}

func (u *ProductUseCase) Reject(ctx context.Context, id, reason string) (*entity.Product, error) {
	if len(strings.TrimSpace(reason)) < minRejectionReasonLen {
		return nil, errors.BadRequest("Rejection reason must be at least 10 characters", nil)
	}

	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Status != entity.ProductStatusPending {
		return nil, errors.BadRequest("Only pending products can be rejected", nil)
	}

	err = u.productRepo.UpdateFields(ctx, id, map[string]interface{}{
		"status":          entity.ProductStatusRejected,
		"isApproved":      false,
		"rejectionReason": strings.TrimSpace(reason),
	})
	if err != nil {
		return nil, err
	}

	return u.productRepo.GetByID(ctx, id)
}

func (u *ProductUseCase) authorizeProduct(ctx context.Context, id, userID, role string) (*entity.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == "admin" {
		return product, nil
	}

	store, err := u.storeRepo.GetByID(ctx, product.StoreID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != userID {
		return nil, errors.Forbidden("You do not manage this product", nil)
	}

	return product, nil
}
