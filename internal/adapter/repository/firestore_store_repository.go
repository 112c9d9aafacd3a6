package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
)

type firestoreStoreRepository struct {
	client *firestore.Client
}

func NewFirestoreStoreRepository(client *firestore.Client) repository.StoreRepository {
	return &firestoreStoreRepository{client: client}
}

func (r *firestoreStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		doc := r.client.Collection("stores").NewDoc()
		store.ID = doc.ID
	}

	now := time.Now()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	store.UpdatedAt = now

	_, err := r.client.Collection("stores").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to create store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	doc, err := r.client.Collection("stores").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Store", err)
		}
		return nil, errors.Internal("Failed to get store", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	docs, err := r.client.Collection("stores").
		Where("slug", "==", slug).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query store by slug", err)
	}

	if len(docs) == 0 {
		return nil, errors.NotFound("Store", nil)
	}

	var store entity.Store
	if err := docs[0].DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) GetBySlugOrID(ctx context.Context, identifier string) (*entity.Store, error) {
	if looksLikeDocID(identifier) {
		store, err := r.GetByID(ctx, identifier)
		if err == nil {
			return store, nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	return r.GetBySlug(ctx, identifier)
}

func (r *firestoreStoreRepository) List(ctx context.Context, verifiedOnly bool, limit, offset int) ([]*entity.Store, error) {
	query := r.client.Collection("stores").Query.Where("isBlocked", "==", false)

	if verifiedOnly {
		query = query.Where("isVerified", "==", true)
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

func (r *firestoreStoreRepository) ListByFollowers(ctx context.Context, limit int) ([]*entity.Store, error) {
	query := r.client.Collection("stores").Query.
		Where("isVerified", "==", true).
		OrderBy("totalFollowers", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.collect(ctx, query)
}

func (r *firestoreStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	store.UpdatedAt = time.Now()

	_, err := r.client.Collection("stores").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to update store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.client.Collection("stores").Doc(id).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Store", err)
		}
		return errors.Internal("Failed to update store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) IncrementFollowers(ctx context.Context, id string, delta int) error {
	_, err := r.client.Collection("stores").Doc(id).Update(ctx, []firestore.Update{
		{Path: "totalFollowers", Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Store", err)
		}
		return errors.Internal("Failed to update follower count", err)
	}

	return nil
}

func (r *firestoreStoreRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Store, error) {
	iter := query.Documents(ctx)
	var stores []*entity.Store

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate stores", err)
		}

		var store entity.Store
		if err := doc.DataTo(&store); err != nil {
			return nil, errors.Internal("Failed to parse store data", err)
		}
		stores = append(stores, &store)
	}

	return stores, nil
}
