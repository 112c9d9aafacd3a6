package entity

import (
	"time"
)

type Store struct {
	ID            string `json:"id" firestore:"id"`
	Name          string `json:"name" firestore:"name"`
	Slug          string `json:"slug" firestore:"slug"`
	Description   string `json:"description" firestore:"description"`
	Location      string `json:"location,omitempty" firestore:"location,omitempty"`
	LogoImage     string `json:"logo_image,omitempty" firestore:"logoImage,omitempty"`
	WhatsappNumber string `json:"whatsapp_number,omitempty" firestore:"whatsappNumber,omitempty"`
	InstagramPage string `json:"instagram_page,omitempty" firestore:"instagramPage,omitempty"`
	Website       string `json:"website,omitempty" firestore:"website,omitempty"`

	TotalClicks        int `json:"total_clicks" firestore:"totalClicks"`
	TotalFollowers     int `json:"total_followers" firestore:"totalFollowers"`
	TotalLikedProducts int `json:"total_liked_products" firestore:"totalLikedProducts"`

	IsVerified bool   `json:"is_verified" firestore:"isVerified"`
	IsBlocked  bool   `json:"is_blocked" firestore:"isBlocked"`
	OwnerID    string `json:"owner_id,omitempty" firestore:"ownerId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
