package entity

import (
	"time"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	PhoneNumber  string `json:"phone_number" firestore:"phoneNumber"`
	Email        string `json:"email,omitempty" firestore:"email,omitempty"`
	Password     string `json:"-" firestore:"password"`
	ProfileImage string `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	Role         string `json:"role" firestore:"role"`

	NumberOfFollowing int  `json:"number_of_following" firestore:"numberOfFollowing"`
	NumberOfClicks    int  `json:"number_of_clicks" firestore:"numberOfClicks"`
	IsActive          bool `json:"is_active" firestore:"isActive"`
	IsBlocked         bool `json:"is_blocked" firestore:"isBlocked"`

	// Set when an admin creates the account on the owner's behalf.
	NeedsPasswordReset bool `json:"needs_password_reset,omitempty" firestore:"needsPasswordReset,omitempty"`

	ResetCode       string     `json:"-" firestore:"resetCode,omitempty"`
	ResetCodeExpiry *time.Time `json:"-" firestore:"resetCodeExpiry,omitempty"`

	// Preferences live on the user document and are replaced wholesale on update.
	Preferences *UserPreferences `json:"preferences,omitempty" firestore:"preferences,omitempty"`

	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
	LastActiveAt time.Time `json:"last_active_at" firestore:"lastActiveAt"`
}

type UserPreferences struct {
	FavoriteCategories []string   `json:"favorite_categories" firestore:"favoriteCategories"`
	PriceRange         PriceRange `json:"price_range" firestore:"priceRange"`
	PreferredStores    []string   `json:"preferred_stores" firestore:"preferredStores"`
	Interests          []string   `json:"interests" firestore:"interests"`
}

type PriceRange struct {
	Min float64 `json:"min" firestore:"min"`
	Max float64 `json:"max" firestore:"max"`
}

// DefaultPreferences is returned when a user has never saved preferences.
// It is never persisted.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		FavoriteCategories: []string{},
		PriceRange:         PriceRange{Min: 0, Max: 1000},
		PreferredStores:    []string{},
		Interests:          []string{},
	}
}
