package repository

import (
	"context"

	"swipemall/internal/domain/entity"
)

type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *entity.SearchHistoryEntry) error
	GetByID(ctx context.Context, id string) (*entity.SearchHistoryEntry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchHistoryEntry, error)
	Delete(ctx context.Context, id string) error
	// DeleteAllByUser removes every entry for the user in one bounded batch
	// and returns the number deleted.
	DeleteAllByUser(ctx context.Context, userID string) (int, error)
}
