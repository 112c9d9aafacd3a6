package usecase

import (
	"context"
	"sort"
	"time"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
)

const (
	maxFeedLimit     = 50
	defaultFeedLimit = 20

	// feedOverfetchFactor pads the candidate query so exclusion and price
	// filtering still leave enough products to fill a page.
	feedOverfetchFactor = 3
)

type FeedUseCase struct {
	productRepo repository.ProductRepository
	swipeRepo   repository.SwipeRepository
	followRepo  repository.FollowRepository
}

func NewFeedUseCase(
	productRepo repository.ProductRepository,
	swipeRepo repository.SwipeRepository,
	followRepo repository.FollowRepository,
) *FeedUseCase {
	return &FeedUseCase{
		productRepo: productRepo,
		swipeRepo:   swipeRepo,
		followRepo:  followRepo,
	}
}

type FeedParams struct {
	Limit             int
	ExcludeSwipedToday bool
	CategorySlug      string
	PriceMax          float64
	OnSaleOnly        bool
}

type FeedInfo struct {
	TotalAvailable int  `json:"total_available"`
	ExcludedCount  int  `json:"excluded_count"`
	// HasMore is a heuristic: true iff the page came back full. A full page
	// does not prove more products exist.
	HasMore bool `json:"has_more"`
}

type FeedResult struct {
	Products []*entity.Product `json:"products"`
	FeedInfo FeedInfo          `json:"feed_info"`
}

func (u *FeedUseCase) GetFeed(ctx context.Context, userID string, params FeedParams) (*FeedResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	excluded := map[string]bool{}
	if params.ExcludeSwipedToday {
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		swipes, err := u.swipeRepo.ListByUserSince(ctx, userID, midnight)
		if err != nil {
			return nil, err
		}
		for _, swipe := range swipes {
			excluded[swipe.ProductID] = true
		}
	}

	candidates, err := u.productRepo.List(ctx, repository.ProductFilter{
		Status:       entity.ProductStatusActive,
		CategorySlug: params.CategorySlug,
	}, feedOverfetchFactor*limit, 0)
	if err != nil {
		return nil, err
	}

	sortProductsNewestFirst(candidates)

	excludedCount := 0
	kept := make([]*entity.Product, 0, len(candidates))
	for _, product := range candidates {
		if excluded[product.ID] {
			excludedCount++
			continue
		}
		if params.PriceMax > 0 && product.EffectivePrice() > params.PriceMax {
			continue
		}
		if params.OnSaleOnly && !product.IsOnSale {
			continue
		}
		kept = append(kept, product)
	}

	totalAvailable := len(kept)
	if len(kept) > limit {
		kept = kept[:limit]
	}

	return &FeedResult{
		Products: kept,
		FeedInfo: FeedInfo{
			TotalAvailable: totalAvailable,
			ExcludedCount:  excludedCount,
			HasMore:        len(kept) == limit,
		},
	}, nil
}

type FollowingFeedResult struct {
	Products []*entity.Product `json:"products"`
	HasMore  bool              `json:"has_more"`
}

// FollowingFeed returns the newest active products from stores the user
// follows.
func (u *FeedUseCase) FollowingFeed(ctx context.Context, userID string, limit int) (*FollowingFeedResult, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	storeIDs, err := u.followRepo.ListStoreIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(storeIDs) == 0 {
		return &FollowingFeedResult{Products: []*entity.Product{}}, nil
	}

	// Fetch one extra so HasMore is exact here, unlike the main feed.
	products, err := u.productRepo.ListByStoreIDs(ctx, storeIDs, limit+1)
	if err != nil {
		return nil, err
	}

	sortProductsNewestFirst(products)

	hasMore := len(products) > limit
	if hasMore {
		products = products[:limit]
	}

	return &FollowingFeedResult{
		Products: products,
		HasMore:  hasMore,
	}, nil
}

// sortProductsNewestFirst orders by createdAt descending with an id
// tie-break so pages are stable for identical timestamps.
func sortProductsNewestFirst(products []*entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})
}
