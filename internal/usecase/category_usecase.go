package usecase

import (
	"context"
	"strings"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (u *CategoryUseCase) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	return u.categoryRepo.List(ctx, activeOnly)
}

func (u *CategoryUseCase) Get(ctx context.Context, identifier string) (*entity.Category, error) {
	return u.categoryRepo.GetBySlugOrID(ctx, identifier)
}

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
	Slug string `json:"slug" validate:"required,min=2,max=60"`
}

func (u *CategoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))

	if _, err := u.categoryRepo.GetBySlug(ctx, slug); err == nil {
		return nil, errors.Conflict("Category slug is already in use")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	category := &entity.Category{
		Name:     input.Name,
		Slug:     slug,
		IsActive: true,
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

type UpdateCategoryInput struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=60"`
	IsActive *bool  `json:"isActive"`
}

func (u *CategoryUseCase) Update(ctx context.Context, identifier string, input UpdateCategoryInput) (*entity.Category, error) {
	category, err := u.categoryRepo.GetBySlugOrID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete refuses while any product still references the category; deactivate
// instead to retire a category with history.
func (u *CategoryUseCase) Delete(ctx context.Context, identifier string) error {
	category, err := u.categoryRepo.GetBySlugOrID(ctx, identifier)
	if err != nil {
		return err
	}

	inUse, err := u.productRepo.AnyInCategory(ctx, category.Slug)
	if err != nil {
		return err
	}
	if inUse {
		return errors.BadRequest("Category still has products; deactivate it instead", nil)
	}

	return u.categoryRepo.Delete(ctx, category.ID)
}
