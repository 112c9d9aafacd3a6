package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipemall/internal/domain/entity"
	"swipemall/pkg/errors"
)

func TestGetPreferencesReturnsDefaultWithoutPersisting(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&entity.User{ID: "user-1", Name: "Dana"})
	uc := NewPreferenceUseCase(userRepo)

	prefs, err := uc.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Empty(t, prefs.FavoriteCategories)
	assert.Equal(t, entity.PriceRange{Min: 0, Max: 1000}, prefs.PriceRange)

	// The default must never be written back to the user document.
	stored, err := userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, stored.Preferences)
}

func TestSetPreferencesRoundTrip(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&entity.User{ID: "user-1"})
	uc := NewPreferenceUseCase(userRepo)

	input := SetPreferencesInput{
		FavoriteCategories: []string{"shoes", "hats"},
		PreferredStores:    []string{"store-one"},
		Interests:          []string{"streetwear"},
	}
	input.PriceRange.Min = 10
	input.PriceRange.Max = 200

	saved, err := uc.SetPreferences(context.Background(), "user-1", input)
	require.NoError(t, err)

	got, err := uc.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, []string{"shoes", "hats"}, got.FavoriteCategories)
	assert.Equal(t, entity.PriceRange{Min: 10, Max: 200}, got.PriceRange)
}

func TestSetPreferencesReplacesWholeDocument(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&entity.User{ID: "user-1"})
	uc := NewPreferenceUseCase(userRepo)

	first := SetPreferencesInput{
		FavoriteCategories: []string{"shoes", "hats"},
		PreferredStores:    []string{"store-one"},
		Interests:          []string{"streetwear"},
	}
	first.PriceRange.Max = 500
	_, err := uc.SetPreferences(context.Background(), "user-1", first)
	require.NoError(t, err)

	second := SetPreferencesInput{
		FavoriteCategories: []string{"bags"},
		PreferredStores:    []string{},
		Interests:          []string{},
	}
	second.PriceRange.Max = 100
	_, err = uc.SetPreferences(context.Background(), "user-1", second)
	require.NoError(t, err)

	got, err := uc.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)

	// Full replace: nothing from the first write survives.
	assert.Equal(t, []string{"bags"}, got.FavoriteCategories)
	assert.Empty(t, got.PreferredStores)
	assert.Empty(t, got.Interests)
	assert.Equal(t, 100.0, got.PriceRange.Max)
}

func TestSetPreferencesRejectsInvertedPriceRange(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&entity.User{ID: "user-1"})
	uc := NewPreferenceUseCase(userRepo)

	input := SetPreferencesInput{
		FavoriteCategories: []string{},
		PreferredStores:    []string{},
		Interests:          []string{},
	}
	input.PriceRange.Min = 100
	input.PriceRange.Max = 10

	_, err := uc.SetPreferences(context.Background(), "user-1", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestPreferencesUnknownUser(t *testing.T) {
	uc := NewPreferenceUseCase(newFakeUserRepo())

	_, err := uc.GetPreferences(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
