package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
)

type firestoreFollowRepository struct {
	client *firestore.Client
}

func NewFirestoreFollowRepository(client *firestore.Client) repository.FollowRepository {
	return &firestoreFollowRepository{client: client}
}

func followDocID(userID, storeID string) string {
	return fmt.Sprintf("%s_%s", userID, storeID)
}

func (r *firestoreFollowRepository) Create(ctx context.Context, follow *entity.UserFollow) error {
	follow.ID = followDocID(follow.UserID, follow.StoreID)
	if follow.CreatedAt.IsZero() {
		follow.CreatedAt = time.Now()
	}

	// Same conditional-create pattern as swipes: one atomic insert-if-absent.
	_, err := r.client.Collection("userFollows").Doc(follow.ID).Create(ctx, follow)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Already following this store")
		}
		return errors.Internal("Failed to create follow", err)
	}

	return nil
}

func (r *firestoreFollowRepository) Get(ctx context.Context, userID, storeID string) (*entity.UserFollow, error) {
	doc, err := r.client.Collection("userFollows").Doc(followDocID(userID, storeID)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Follow", err)
		}
		return nil, errors.Internal("Failed to get follow", err)
	}

	var follow entity.UserFollow
	if err := doc.DataTo(&follow); err != nil {
		return nil, errors.Internal("Failed to parse follow data", err)
	}

	return &follow, nil
}

func (r *firestoreFollowRepository) Delete(ctx context.Context, userID, storeID string) error {
	ref := r.client.Collection("userFollows").Doc(followDocID(userID, storeID))

	// Conditional delete, the mirror of the conditional create: of two
	// concurrent unfollows only one wins, so the follower count is
	// decremented exactly once per follow.
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Follow", err)
		}
		return errors.Internal("Failed to delete follow", err)
	}

	return nil
}

func (r *firestoreFollowRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.UserFollow, error) {
	query := r.client.Collection("userFollows").Query.
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return r.collect(ctx, query)
}

func (r *firestoreFollowRepository) ListStoreIDsByUser(ctx context.Context, userID string) ([]string, error) {
	follows, err := r.collect(ctx, r.client.Collection("userFollows").Query.Where("userId", "==", userID))
	if err != nil {
		return nil, err
	}

	storeIDs := make([]string, 0, len(follows))
	for _, follow := range follows {
		storeIDs = append(storeIDs, follow.StoreID)
	}

	return storeIDs, nil
}

func (r *firestoreFollowRepository) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.UserFollow, error) {
	query := r.client.Collection("userFollows").Query.
		Where("storeId", "==", storeID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return r.collect(ctx, query)
}

func (r *firestoreFollowRepository) CountByStore(ctx context.Context, storeID string) (int, error) {
	docs, err := r.client.Collection("userFollows").
		Where("storeId", "==", storeID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count followers", err)
	}

	return len(docs), nil
}

func (r *firestoreFollowRepository) ListByStoreSince(ctx context.Context, storeID string, since time.Time) ([]*entity.UserFollow, error) {
	query := r.client.Collection("userFollows").Query.
		Where("storeId", "==", storeID).
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Asc)

	return r.collect(ctx, query)
}

func (r *firestoreFollowRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.UserFollow, error) {
	iter := query.Documents(ctx)
	var follows []*entity.UserFollow

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate follows", err)
		}

		var follow entity.UserFollow
		if err := doc.DataTo(&follow); err != nil {
			return nil, errors.Internal("Failed to parse follow data", err)
		}
		follows = append(follows, &follow)
	}

	return follows, nil
}
