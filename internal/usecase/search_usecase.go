package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
	"swipemall/pkg/logger"
)

const (
	maxSearchLimit = 20

	// searchFetchSize bounds how many catalog rows each matcher scans; the
	// store cannot do substring matching server-side.
	searchFetchSize = 200

	// searchHistoryCap is a hard cap on returned history entries, applied
	// after deduplication regardless of the requested limit.
	searchHistoryCap = 10

	sideEffectTimeout = 5 * time.Second
)

const (
	SearchTypeAll        = "all"
	SearchTypeProducts   = "products"
	SearchTypeCategories = "categories"
	SearchTypeStores     = "stores"
)

type SearchUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
	historyRepo  repository.SearchHistoryRepository
}

func NewSearchUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	storeRepo repository.StoreRepository,
	historyRepo repository.SearchHistoryRepository,
) *SearchUseCase {
	return &SearchUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		historyRepo:  historyRepo,
	}
}

type SearchParams struct {
	Query        string
	Type         string
	Limit        int
	CategorySlug string
	StoreSlug    string
	PriceMax     float64
	OnSaleOnly   bool
}

type SearchResult struct {
	Query      string             `json:"query"`
	Type       string             `json:"type"`
	Products   []*entity.Product  `json:"products"`
	Categories []*entity.Category `json:"categories"`
	Stores     []*entity.Store    `json:"stores"`
	// TotalResults sums the three result arrays, each already capped at the
	// per-type limit.
	TotalResults int `json:"total_results"`
}

// Search matches the query as a case-insensitive substring against
// products, categories and stores concurrently. Each type is truncated to
// the limit independently. For authenticated callers the query is recorded
// to search history best-effort; that write can never fail the search.
func (u *SearchUseCase) Search(ctx context.Context, userID string, params SearchParams) (*SearchResult, error) {
	query := strings.ToLower(strings.TrimSpace(params.Query))
	if query == "" {
		return nil, errors.BadRequest("Search query is required", nil)
	}

	searchType := params.Type
	if searchType == "" {
		searchType = SearchTypeAll
	}
	switch searchType {
	case SearchTypeAll, SearchTypeProducts, SearchTypeCategories, SearchTypeStores:
	default:
		return nil, errors.BadRequest("Type must be one of: all, products, categories, stores", nil)
	}

	limit := params.Limit
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	result := &SearchResult{
		Query:      query,
		Type:       searchType,
		Products:   []*entity.Product{},
		Categories: []*entity.Category{},
		Stores:     []*entity.Store{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if searchType == SearchTypeAll || searchType == SearchTypeProducts {
		g.Go(func() error {
			products, err := u.searchProducts(gctx, query, params, limit)
			if err != nil {
				return err
			}
			result.Products = products
			return nil
		})
	}

	if searchType == SearchTypeAll || searchType == SearchTypeCategories {
		g.Go(func() error {
			categories, err := u.searchCategories(gctx, query, limit)
			if err != nil {
				return err
			}
			result.Categories = categories
			return nil
		})
	}

	if searchType == SearchTypeAll || searchType == SearchTypeStores {
		g.Go(func() error {
			stores, err := u.searchStores(gctx, query, limit)
			if err != nil {
				return err
			}
			result.Stores = stores
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.TotalResults = len(result.Products) + len(result.Categories) + len(result.Stores)

	if userID != "" {
		u.recordHistory(userID, query, searchType)
	}

	return result, nil
}

func (u *SearchUseCase) searchProducts(ctx context.Context, query string, params SearchParams, limit int) ([]*entity.Product, error) {
	candidates, err := u.productRepo.List(ctx, repository.ProductFilter{
		Status:       entity.ProductStatusActive,
		CategorySlug: params.CategorySlug,
		StoreSlug:    params.StoreSlug,
	}, searchFetchSize, 0)
	if err != nil {
		return nil, err
	}

	matches := []*entity.Product{}
	for _, product := range candidates {
		if params.PriceMax > 0 && product.EffectivePrice() > params.PriceMax {
			continue
		}
		if params.OnSaleOnly && !product.IsOnSale {
			continue
		}
		if !containsFold(query, product.Name, product.Description) {
			continue
		}
		matches = append(matches, product)
		if len(matches) == limit {
			break
		}
	}

	return matches, nil
}

func (u *SearchUseCase) searchCategories(ctx context.Context, query string, limit int) ([]*entity.Category, error) {
	candidates, err := u.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	matches := []*entity.Category{}
	for _, category := range candidates {
		if !containsFold(query, category.Name, category.Slug) {
			continue
		}
		matches = append(matches, category)
		if len(matches) == limit {
			break
		}
	}

	return matches, nil
}

func (u *SearchUseCase) searchStores(ctx context.Context, query string, limit int) ([]*entity.Store, error) {
	candidates, err := u.storeRepo.List(ctx, false, searchFetchSize, 0)
	if err != nil {
		return nil, err
	}

	matches := []*entity.Store{}
	for _, store := range candidates {
		if !containsFold(query, store.Name, store.Slug, store.Description, store.Location) {
			continue
		}
		matches = append(matches, store)
		if len(matches) == limit {
			break
		}
	}

	return matches, nil
}

// recordHistory is fire-and-forget: it runs on a detached context so client
// disconnects do not cancel it, and errors are only logged.
func (u *SearchUseCase) recordHistory(userID, query, searchType string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		err := u.historyRepo.Create(ctx, &entity.SearchHistoryEntry{
			UserID:    userID,
			Query:     query,
			Type:      searchType,
			CreatedAt: time.Now(),
		})
		if err != nil {
			logger.Warn("Failed to record search history for user %s: %v", userID, err)
		}
	}()
}

// ListHistory returns the user's history newest-first, deduplicated by
// query text keeping the most recent occurrence, hard-capped at 10.
func (u *SearchUseCase) ListHistory(ctx context.Context, userID string, limit int) ([]*entity.SearchHistoryEntry, error) {
	if limit <= 0 || limit > searchHistoryCap {
		limit = searchHistoryCap
	}

	// Over-fetch so deduplication still fills the cap.
	entries, err := u.historyRepo.ListByUser(ctx, userID, searchFetchSize)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	deduped := []*entity.SearchHistoryEntry{}
	for _, entry := range entries {
		if seen[entry.Query] {
			continue
		}
		seen[entry.Query] = true
		deduped = append(deduped, entry)
		if len(deduped) == limit {
			break
		}
	}

	return deduped, nil
}

func (u *SearchUseCase) DeleteHistoryEntry(ctx context.Context, userID, entryID string) error {
	entry, err := u.historyRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	if entry.UserID != userID {
		return errors.Forbidden("You can only delete your own search history", nil)
	}

	return u.historyRepo.Delete(ctx, entryID)
}

// ClearHistory removes all of the user's entries and reports how many were
// deleted. Clearing an already-empty history is not an error.
func (u *SearchUseCase) ClearHistory(ctx context.Context, userID string) (int, error) {
	return u.historyRepo.DeleteAllByUser(ctx, userID)
}

func containsFold(query string, fields ...string) bool {
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
