package repository

import (
	"context"
	"time"

	"swipemall/internal/domain/entity"
)

// SwipeFilter narrows swipe history listings. Zero values mean "no filter".
type SwipeFilter struct {
	Action       string
	CategorySlug string
	StoreSlug    string
}

type SwipeRepository interface {
	// Create inserts the swipe under its deterministic composite ID and fails
	// with Conflict if the user already swiped the product. The write is a
	// single conditional create, so concurrent duplicates cannot race past
	// each other.
	Create(ctx context.Context, swipe *entity.Swipe) error
	ListByUser(ctx context.Context, userID string, filter SwipeFilter, limit, offset int) ([]*entity.Swipe, error)
	// ListByUserSince returns all swipes by the user created at or after the
	// given instant.
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*entity.Swipe, error)
	// ListRecentLikes returns the user's most recent like-swipes, newest first.
	ListRecentLikes(ctx context.Context, userID string, limit int) ([]*entity.Swipe, error)
}
