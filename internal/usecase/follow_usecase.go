package usecase

import (
	"context"
	"time"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
	"swipemall/pkg/logger"
)

type FollowUseCase struct {
	followRepo repository.FollowRepository
	storeRepo  repository.StoreRepository
}

func NewFollowUseCase(
	followRepo repository.FollowRepository,
	storeRepo repository.StoreRepository,
) *FollowUseCase {
	return &FollowUseCase{
		followRepo: followRepo,
		storeRepo:  storeRepo,
	}
}

// Follow subscribes the user to a store. The insert is conditional on the
// composite id, so a concurrent duplicate fails with Conflict instead of
// double-counting.
func (u *FollowUseCase) Follow(ctx context.Context, userID, storeIdentifier string) (*entity.UserFollow, error) {
	store, err := u.storeRepo.GetBySlugOrID(ctx, storeIdentifier)
	if err != nil {
		return nil, err
	}

	if store.IsBlocked {
		return nil, errors.NotFound("Store", nil)
	}

	follow := &entity.UserFollow{
		UserID:    userID,
		StoreID:   store.ID,
		StoreSlug: store.Slug,
		StoreName: store.Name,
		CreatedAt: time.Now(),
	}

	if err := u.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}

	if err := u.storeRepo.IncrementFollowers(ctx, store.ID, 1); err != nil {
		logger.Warn("Follow recorded but counter update failed for store %s: %v", store.ID, err)
	}

	return follow, nil
}

func (u *FollowUseCase) Unfollow(ctx context.Context, userID, storeIdentifier string) error {
	store, err := u.storeRepo.GetBySlugOrID(ctx, storeIdentifier)
	if err != nil {
		return err
	}

	if err := u.followRepo.Delete(ctx, userID, store.ID); err != nil {
		return err
	}

	if err := u.storeRepo.IncrementFollowers(ctx, store.ID, -1); err != nil {
		logger.Warn("Unfollow recorded but counter update failed for store %s: %v", store.ID, err)
	}

	return nil
}

func (u *FollowUseCase) IsFollowing(ctx context.Context, userID, storeIdentifier string) (bool, error) {
	store, err := u.storeRepo.GetBySlugOrID(ctx, storeIdentifier)
	if err != nil {
		return false, err
	}

	_, err = u.followRepo.Get(ctx, userID, store.ID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ListFollowing returns the stores the user follows, joined with the
// current store document where it still exists.
func (u *FollowUseCase) ListFollowing(ctx context.Context, userID string, limit, offset int) ([]*entity.UserFollowWithStore, error) {
	follows, err := u.followRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	stores := map[string]*entity.Store{}
	following := make([]*entity.UserFollowWithStore, 0, len(follows))

	for _, follow := range follows {
		store, ok := stores[follow.StoreID]
		if !ok {
			store, err = u.storeRepo.GetByID(ctx, follow.StoreID)
			if err != nil {
				store = nil
			}
			stores[follow.StoreID] = store
		}
		if store != nil {
			store = publicStore(store)
		}

		following = append(following, &entity.UserFollowWithStore{
			UserFollow: *follow,
			Store:      store,
		})
	}

	return following, nil
}
