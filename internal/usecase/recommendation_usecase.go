package usecase

import (
	"context"
	"sort"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/logger"
)

const (
	maxRecommendationLimit     = 20
	defaultRecommendationLimit = 10

	// Relative weighting: a single signal-category match outranks any
	// realistic follower gap below ~100 followers.
	categoryMatchWeight = 10.0
	followerWeight      = 0.1

	signalSetSize = 5
)

type RecommendationUseCase struct {
	storeRepo   repository.StoreRepository
	swipeRepo   repository.SwipeRepository
	followRepo  repository.FollowRepository
	productRepo repository.ProductRepository
}

func NewRecommendationUseCase(
	storeRepo repository.StoreRepository,
	swipeRepo repository.SwipeRepository,
	followRepo repository.FollowRepository,
	productRepo repository.ProductRepository,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		storeRepo:   storeRepo,
		swipeRepo:   swipeRepo,
		followRepo:  followRepo,
		productRepo: productRepo,
	}
}

type RecommendationInfo struct {
	SignalCategories []string `json:"signal_categories"`
	ColdStart        bool     `json:"cold_start"`
}

type RecommendationResult struct {
	Recommendations    []*entity.Store    `json:"recommendations"`
	RecommendationInfo RecommendationInfo `json:"recommendation_info"`
}

type scoredStore struct {
	store *entity.Store
	score float64
}

// RecommendStores ranks verified stores the user does not follow by a
// content-plus-popularity hybrid: liked categories dominate, follower count
// breaks the rest. With no like history the ranking degrades to pure
// popularity.
func (u *RecommendationUseCase) RecommendStores(ctx context.Context, userID string, limit int) (*RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	followedIDs, err := u.followRepo.ListStoreIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	followed := make(map[string]bool, len(followedIDs))
	for _, id := range followedIDs {
		followed[id] = true
	}

	signal, err := u.signalCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := u.storeRepo.ListByFollowers(ctx, feedOverfetchFactor*limit)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredStore, 0, len(candidates))
	for _, store := range candidates {
		if store.IsBlocked || followed[store.ID] {
			continue
		}

		matches := 0
		for _, categorySlug := range signal {
			hasProduct, err := u.productRepo.HasActiveInCategory(ctx, store.ID, categorySlug)
			if err != nil {
				logger.Warn("Category probe failed for store %s: %v", store.ID, err)
				continue
			}
			if hasProduct {
				matches++
			}
		}

		scored = append(scored, scoredStore{
			store: store,
			score: categoryMatchWeight*float64(matches) + followerWeight*float64(store.TotalFollowers),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].store.Slug < scored[j].store.Slug
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	// The score is internal; callers only see the ordering.
	recommendations := make([]*entity.Store, 0, len(scored))
	for _, s := range scored {
		recommendations = append(recommendations, s.store)
	}

	return &RecommendationResult{
		Recommendations: recommendations,
		RecommendationInfo: RecommendationInfo{
			SignalCategories: signal,
			ColdStart:        len(signal) == 0,
		},
	}, nil
}

// signalCategories derives the top categories from the user's most recent
// like-swipes, count descending with slug-ascending tie-break.
func (u *RecommendationUseCase) signalCategories(ctx context.Context, userID string) ([]string, error) {
	likes, err := u.swipeRepo.ListRecentLikes(ctx, userID, recentLikeWindow)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, like := range likes {
		if like.CategorySlug != "" {
			counts[like.CategorySlug]++
		}
	}

	ranked := topSlugCounts(counts, signalSetSize)

	signal := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		signal = append(signal, entry.Slug)
	}

	return signal, nil
}
