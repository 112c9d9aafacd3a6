package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
	"swipemall/pkg/logger"
)

// Firestore caps both GetAll fan-outs and "in" operator values.
const (
	batchGetSize = 30
	inQuerySize  = 10
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) GetMany(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	products := make(map[string]*entity.Product, len(ids))

	for i := 0; i < len(ids); i += batchGetSize {
		end := i + batchGetSize
		if end > len(ids) {
			end = len(ids)
		}

		batch := ids[i:end]
		refs := make([]*firestore.DocumentRef, len(batch))
		for j, id := range batch {
			refs[j] = r.client.Collection("products").Doc(id)
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch products", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				logger.Warn("Skipping unparseable product %s: %v", doc.Ref.ID, err)
				continue
			}
			products[doc.Ref.ID] = &product
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.CategorySlug != "" {
		query = query.Where("categorySlug", "==", filter.CategorySlug)
	}
	if filter.StoreSlug != "" {
		query = query.Where("storeSlug", "==", filter.StoreSlug)
	}
	if filter.StoreID != "" {
		query = query.Where("storeId", "==", filter.StoreID)
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

func (r *firestoreProductRepository) ListPending(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	// Oldest first so the approval queue is fair.
	query := r.client.Collection("products").Query.
		Where("status", "==", entity.ProductStatusPending).
		OrderBy("createdAt", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListByStoreSince(ctx context.Context, storeID string, since time.Time, limit int) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query.
		Where("storeId", "==", storeID).
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListByStoreIDs(ctx context.Context, storeIDs []string, limit int) ([]*entity.Product, error) {
	var products []*entity.Product

	for i := 0; i < len(storeIDs); i += inQuerySize {
		end := i + inQuerySize
		if end > len(storeIDs) {
			end = len(storeIDs)
		}

		query := r.client.Collection("products").Query.
			Where("status", "==", entity.ProductStatusActive).
			Where("storeId", "in", storeIDs[i:end]).
			OrderBy("createdAt", firestore.Desc)
		if limit > 0 {
			query = query.Limit(limit)
		}

		chunk, err := r.collect(ctx, query)
		if err != nil {
			return nil, err
		}
		products = append(products, chunk...)
	}

	return products, nil
}

func (r *firestoreProductRepository) CountByStore(ctx context.Context, storeID string) (int, int, error) {
	docs, err := r.client.Collection("products").
		Where("storeId", "==", storeID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, 0, errors.Internal("Failed to count store products", err)
	}

	active := 0
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if product.Status == entity.ProductStatusActive {
			active++
		}
	}

	return len(docs), active, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.client.Collection("products").Doc(id).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "totalViews", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment product views", err)
	}

	return nil
}

func (r *firestoreProductRepository) ApplySwipe(ctx context.Context, id string, action string) error {
	field := "totalDislikes"
	if action == entity.SwipeActionLike {
		field = "totalLikes"
	}

	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update swipe counters", err)
	}

	return nil
}

func (r *firestoreProductRepository) HasActiveInCategory(ctx context.Context, storeID, categorySlug string) (bool, error) {
	docs, err := r.client.Collection("products").
		Where("storeId", "==", storeID).
		Where("categorySlug", "==", categorySlug).
		Where("status", "==", entity.ProductStatusActive).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return false, errors.Internal("Failed to check store category products", err)
	}

	return len(docs) > 0, nil
}

func (r *firestoreProductRepository) AnyInCategory(ctx context.Context, categorySlug string) (bool, error) {
	docs, err := r.client.Collection("products").
		Where("categorySlug", "==", categorySlug).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return false, errors.Internal("Failed to check category products", err)
	}

	return len(docs) > 0, nil
}

func (r *firestoreProductRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}
