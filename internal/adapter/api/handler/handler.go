package handler

import (
	"github.com/labstack/echo/v4"

	"swipemall/internal/usecase"
)

var (
	authHandler           *AuthHandler
	swipeHandler          *SwipeHandler
	feedHandler           *FeedHandler
	preferenceHandler     *PreferenceHandler
	recommendationHandler *RecommendationHandler
	searchHandler         *SearchHandler
	storeHandler          *StoreHandler
	categoryHandler       *CategoryHandler
	productHandler        *ProductHandler
	followHandler         *FollowHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	swipeUseCase *usecase.SwipeUseCase,
	feedUseCase *usecase.FeedUseCase,
	preferenceUseCase *usecase.PreferenceUseCase,
	recommendationUseCase *usecase.RecommendationUseCase,
	searchUseCase *usecase.SearchUseCase,
	storeUseCase *usecase.StoreUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	productUseCase *usecase.ProductUseCase,
	followUseCase *usecase.FollowUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	swipeHandler = NewSwipeHandler(swipeUseCase)
	feedHandler = NewFeedHandler(feedUseCase)
	preferenceHandler = NewPreferenceHandler(preferenceUseCase)
	recommendationHandler = NewRecommendationHandler(recommendationUseCase)
	searchHandler = NewSearchHandler(searchUseCase)
	storeHandler = NewStoreHandler(storeUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	productHandler = NewProductHandler(productUseCase)
	followHandler = NewFollowHandler(followUseCase)
}

func GetAuthHandler() *AuthHandler                     { return authHandler }
func GetSwipeHandler() *SwipeHandler                   { return swipeHandler }
func GetFeedHandler() *FeedHandler                     { return feedHandler }
func GetPreferenceHandler() *PreferenceHandler         { return preferenceHandler }
func GetRecommendationHandler() *RecommendationHandler { return recommendationHandler }
func GetSearchHandler() *SearchHandler                 { return searchHandler }
func GetStoreHandler() *StoreHandler                   { return storeHandler }
func GetCategoryHandler() *CategoryHandler             { return categoryHandler }
func GetProductHandler() *ProductHandler               { return productHandler }
func GetFollowHandler() *FollowHandler                 { return followHandler }

// currentRole reads the role resolved by middleware, defaulting to the
// lowest privilege.
func currentRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok && role != "" {
		return role
	}
	return "user"
}
