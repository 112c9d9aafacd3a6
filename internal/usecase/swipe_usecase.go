package usecase

import (
	"context"
	"sort"
	"time"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
	"swipemall/pkg/logger"
)

// recentLikeWindow is how many of the newest like-swipes feed the
// category signal used by analytics and recommendations.
const recentLikeWindow = 50

type SwipeUseCase struct {
	swipeRepo   repository.SwipeRepository
	productRepo repository.ProductRepository
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	productRepo repository.ProductRepository,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:   swipeRepo,
		productRepo: productRepo,
	}
}

type RecordSwipeInput struct {
	ProductID      string `json:"productId" validate:"required"`
	Action         string `json:"action" validate:"required,oneof=like dislike"`
	SwipeDirection string `json:"swipeDirection" validate:"omitempty,oneof=left right"`
	TimeSpent      int    `json:"timeSpent" validate:"omitempty,min=0"`
}

func (u *SwipeUseCase) RecordSwipe(ctx context.Context, userID string, input RecordSwipeInput) (*entity.Swipe, error) {
	product, err := u.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if product.Status != entity.ProductStatusActive {
		return nil, errors.BadRequest("Product is not available for swiping", nil)
	}

	direction := input.SwipeDirection
	if direction == "" {
		direction = entity.SwipeDirectionLeft
		if input.Action == entity.SwipeActionLike {
			direction = entity.SwipeDirectionRight
		}
	}

	// Store, category and price are snapshotted so analytics stay correct
	// even if the product is edited or deleted afterwards.
	swipe := &entity.Swipe{
		UserID:         userID,
		ProductID:      product.ID,
		Action:         input.Action,
		SwipeDirection: direction,
		TimeSpent:      input.TimeSpent,
		StoreSlug:      product.StoreSlug,
		CategorySlug:   product.CategorySlug,
		ProductPrice:   product.EffectivePrice(),
		CreatedAt:      time.Now(),
	}

	if err := u.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, err
	}

	// Counter bump is a storage-side increment: approximate, never lost to
	// concurrent writers, and a failure does not undo the recorded swipe.
	if err := u.productRepo.ApplySwipe(ctx, product.ID, input.Action); err != nil {
		logger.Warn("Swipe recorded but counter update failed for product %s: %v", product.ID, err)
	}

	return swipe, nil
}

type SwipeHistoryFilter struct {
	Action       string
	CategorySlug string
	StoreSlug    string
}

func (u *SwipeUseCase) ListHistory(ctx context.Context, userID string, filter SwipeHistoryFilter, limit, offset int) ([]*entity.SwipeWithProduct, error) {
	swipes, err := u.swipeRepo.ListByUser(ctx, userID, repository.SwipeFilter{
		Action:       filter.Action,
		CategorySlug: filter.CategorySlug,
		StoreSlug:    filter.StoreSlug,
	}, limit, offset)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(swipes))
	for _, swipe := range swipes {
		productIDs = append(productIDs, swipe.ProductID)
	}

	// Best-effort join: a deleted product just means no enrichment.
	products, err := u.productRepo.GetMany(ctx, productIDs)
	if err != nil {
		logger.Warn("Product join failed for swipe history of user %s: %v", userID, err)
		products = map[string]*entity.Product{}
	}

	history := make([]*entity.SwipeWithProduct, 0, len(swipes))
	for _, swipe := range swipes {
		history = append(history, &entity.SwipeWithProduct{
			Swipe:   *swipe,
			Product: products[swipe.ProductID],
		})
	}

	return history, nil
}

type SwipeAnalytics struct {
	Period           string       `json:"period"`
	TotalSwipes      int          `json:"total_swipes"`
	TotalLikes       int          `json:"total_likes"`
	TotalDislikes    int          `json:"total_dislikes"`
	LikeRate         float64      `json:"like_rate"`
	AverageTimeSpent float64      `json:"average_time_spent"`
	TopCategories    []SlugCount  `json:"top_categories"`
	TopStores        []SlugCount  `json:"top_stores"`
}

type SlugCount struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

var analyticsPeriods = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

func (u *SwipeUseCase) Analytics(ctx context.Context, userID, period string) (*SwipeAnalytics, error) {
	window, ok := analyticsPeriods[period]
	if !ok {
		return nil, errors.BadRequest("Period must be one of: 1d, 7d, 30d", nil)
	}

	swipes, err := u.swipeRepo.ListByUserSince(ctx, userID, time.Now().Add(-window))
	if err != nil {
		return nil, err
	}

	analytics := &SwipeAnalytics{
		Period:        period,
		TopCategories: []SlugCount{},
		TopStores:     []SlugCount{},
	}

	categoryCounts := map[string]int{}
	storeCounts := map[string]int{}
	totalTime := 0

	for _, swipe := range swipes {
		analytics.TotalSwipes++
		if swipe.Action == entity.SwipeActionLike {
			analytics.TotalLikes++
		} else {
			analytics.TotalDislikes++
		}
		totalTime += swipe.TimeSpent
		categoryCounts[swipe.CategorySlug]++
		storeCounts[swipe.StoreSlug]++
	}

	if analytics.TotalSwipes > 0 {
		analytics.LikeRate = float64(analytics.TotalLikes) / float64(analytics.TotalSwipes)
		analytics.AverageTimeSpent = float64(totalTime) / float64(analytics.TotalSwipes)
	}

	analytics.TopCategories = topSlugCounts(categoryCounts, 5)
	analytics.TopStores = topSlugCounts(storeCounts, 5)

	return analytics, nil
}

// topSlugCounts ranks by count descending with slug-ascending tie-break so
// the output is deterministic.
func topSlugCounts(counts map[string]int, n int) []SlugCount {
	ranked := make([]SlugCount, 0, len(counts))
	for slug, count := range counts {
		if slug == "" {
			continue
		}
		ranked = append(ranked, SlugCount{Slug: slug, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Slug < ranked[j].Slug
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
