package repository

import (
	"context"

	"swipemall/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	// GetBySlugOrID resolves a path identifier that may be either a document
	// ID or a slug.
	GetBySlugOrID(ctx context.Context, identifier string) (*entity.Store, error)
	List(ctx context.Context, verifiedOnly bool, limit, offset int) ([]*entity.Store, error)
	// ListByFollowers returns verified stores ordered by totalFollowers descending.
	ListByFollowers(ctx context.Context, limit int) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// IncrementFollowers applies a follower-count delta atomically at the
	// storage layer so concurrent follows never lose updates.
	IncrementFollowers(ctx context.Context, id string, delta int) error
}
