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

type firestoreSearchHistoryRepository struct {
	client *firestore.Client
}

func NewFirestoreSearchHistoryRepository(client *firestore.Client) repository.SearchHistoryRepository {
	return &firestoreSearchHistoryRepository{client: client}
}

func (r *firestoreSearchHistoryRepository) Create(ctx context.Context, entry *entity.SearchHistoryEntry) error {
	if entry.ID == "" {
		doc := r.client.Collection("searchHistory").NewDoc()
		entry.ID = doc.ID
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("searchHistory").Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to save search history", err)
	}

	return nil
}

func (r *firestoreSearchHistoryRepository) GetByID(ctx context.Context, id string) (*entity.SearchHistoryEntry, error) {
	doc, err := r.client.Collection("searchHistory").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Search history item", err)
		}
		return nil, errors.Internal("Failed to get search history item", err)
	}

	var entry entity.SearchHistoryEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, errors.Internal("Failed to parse search history data", err)
	}

	return &entry, nil
}

func (r *firestoreSearchHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchHistoryEntry, error) {
	query := r.client.Collection("searchHistory").Query.
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var entries []*entity.SearchHistoryEntry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate search history", err)
		}

		var entry entity.SearchHistoryEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse search history data", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *firestoreSearchHistoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("searchHistory").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete search history item", err)
	}

	return nil
}

func (r *firestoreSearchHistoryRepository) DeleteAllByUser(ctx context.Context, userID string) (int, error) {
	docs, err := r.client.Collection("searchHistory").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query search history", err)
	}

	if len(docs) == 0 {
		return 0, nil
	}

	// One bounded batch instead of N sequential deletes.
	bw := r.client.BulkWriter(ctx)
	for _, doc := range docs {
		if _, err := bw.Delete(doc.Ref); err != nil {
			bw.End()
			return 0, errors.Internal("Failed to enqueue search history delete", err)
		}
	}
	bw.End()

	return len(docs), nil
}
