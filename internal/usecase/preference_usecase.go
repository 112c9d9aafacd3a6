package usecase

import (
	"context"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
)

type PreferenceUseCase struct {
	userRepo repository.UserRepository
}

func NewPreferenceUseCase(userRepo repository.UserRepository) *PreferenceUseCase {
	return &PreferenceUseCase{userRepo: userRepo}
}

// GetPreferences returns the user's stored preferences, or the documented
// default when none have been saved. The default is never written back.
func (u *PreferenceUseCase) GetPreferences(ctx context.Context, userID string) (*entity.UserPreferences, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Preferences == nil {
		return entity.DefaultPreferences(), nil
	}

	return user.Preferences, nil
}

type SetPreferencesInput struct {
	FavoriteCategories []string `json:"favoriteCategories" validate:"required"`
	PriceRange         struct {
		Min float64 `json:"min" validate:"min=0"`
		Max float64 `json:"max" validate:"min=0"`
	} `json:"priceRange"`
	PreferredStores []string `json:"preferredStores" validate:"required"`
	Interests       []string `json:"interests" validate:"required"`
}

// SetPreferences replaces the whole preferences document. There is no merge.
func (u *PreferenceUseCase) SetPreferences(ctx context.Context, userID string, input SetPreferencesInput) (*entity.UserPreferences, error) {
	if input.PriceRange.Max < input.PriceRange.Min {
		return nil, errors.BadRequest("Price range max must not be below min", nil)
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	prefs := &entity.UserPreferences{
		FavoriteCategories: input.FavoriteCategories,
		PriceRange: entity.PriceRange{
			Min: input.PriceRange.Min,
			Max: input.PriceRange.Max,
		},
		PreferredStores: input.PreferredStores,
		Interests:       input.Interests,
	}

	if err := u.userRepo.SetPreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}
