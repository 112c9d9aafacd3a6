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

type firestoreSwipeRepository struct {
	client *firestore.Client
}

func NewFirestoreSwipeRepository(client *firestore.Client) repository.SwipeRepository {
	return &firestoreSwipeRepository{client: client}
}

// swipeDocID derives the deterministic document ID that enforces the
// one-swipe-per-(user,product) invariant.
func swipeDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreSwipeRepository) Create(ctx context.Context, swipe *entity.Swipe) error {
	swipe.ID = swipeDocID(swipe.UserID, swipe.ProductID)
	if swipe.CreatedAt.IsZero() {
		swipe.CreatedAt = time.Now()
	}

	// Create, not Set: the write fails if the document already exists, so two
	// concurrent swipes on the same product cannot both land.
	_, err := r.client.Collection("userSwipes").Doc(swipe.ID).Create(ctx, swipe)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Product already swiped")
		}
		return errors.Internal("Failed to record swipe", err)
	}

	return nil
}

func (r *firestoreSwipeRepository) ListByUser(ctx context.Context, userID string, filter repository.SwipeFilter, limit, offset int) ([]*entity.Swipe, error) {
	query := r.client.Collection("userSwipes").Query.Where("userId", "==", userID)

	if filter.Action != "" {
		query = query.Where("action", "==", filter.Action)
	}
	if filter.CategorySlug != "" {
		query = query.Where("categorySlug", "==", filter.CategorySlug)
	}
	if filter.StoreSlug != "" {
		query = query.Where("storeSlug", "==", filter.StoreSlug)
	}

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return r.collect(ctx, query)
}

func (r *firestoreSwipeRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*entity.Swipe, error) {
	query := r.client.Collection("userSwipes").Query.
		Where("userId", "==", userID).
		Where("createdAt", ">=", since)

	return r.collect(ctx, query)
}

func (r *firestoreSwipeRepository) ListRecentLikes(ctx context.Context, userID string, limit int) ([]*entity.Swipe, error) {
	query := r.client.Collection("userSwipes").Query.
		Where("userId", "==", userID).
		Where("action", "==", entity.SwipeActionLike).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.collect(ctx, query)
}

func (r *firestoreSwipeRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Swipe, error) {
	iter := query.Documents(ctx)
	var swipes []*entity.Swipe

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate swipes", err)
		}

		var swipe entity.Swipe
		if err := doc.DataTo(&swipe); err != nil {
			return nil, errors.Internal("Failed to parse swipe data", err)
		}
		swipes = append(swipes, &swipe)
	}

	return swipes, nil
}
