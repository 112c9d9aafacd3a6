package repository

import (
	"context"
	"time"

	"swipemall/internal/domain/entity"
)

type FollowRepository interface {
	// Create inserts the follow under its deterministic composite ID and
	// fails with Conflict if the user already follows the store.
	Create(ctx context.Context, follow *entity.UserFollow) error
	Get(ctx context.Context, userID, storeID string) (*entity.UserFollow, error)
	Delete(ctx context.Context, userID, storeID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.UserFollow, error)
	ListStoreIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.UserFollow, error)
	CountByStore(ctx context.Context, storeID string) (int, error)
	ListByStoreSince(ctx context.Context, storeID string, since time.Time) ([]*entity.UserFollow, error)
}
