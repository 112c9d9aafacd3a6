package repository

import (
	"context"
	"time"

	"swipemall/internal/domain/entity"
)

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	Status       string
	CategorySlug string
	StoreSlug    string
	StoreID      string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetMany(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	// List returns products matching the filter ordered by createdAt descending.
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	ListPending(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListByStoreSince(ctx context.Context, storeID string, since time.Time, limit int) ([]*entity.Product, error)
	// ListByStoreIDs queries products of the given stores newest-first,
	// chunking the id set to respect the store's "in" operator limit.
	ListByStoreIDs(ctx context.Context, storeIDs []string, limit int) ([]*entity.Product, error)
	CountByStore(ctx context.Context, storeID string) (total int, active int, err error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	// ApplySwipe bumps totalLikes or totalDislikes by one as an atomic
	// storage-side increment.
	ApplySwipe(ctx context.Context, id string, action string) error
	// HasActiveInCategory reports whether the store has at least one active
	// product in the category.
	HasActiveInCategory(ctx context.Context, storeID, categorySlug string) (bool, error)
	AnyInCategory(ctx context.Context, categorySlug string) (bool, error)
}
