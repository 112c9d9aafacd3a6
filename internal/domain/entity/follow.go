package entity

import (
	"time"
)

type UserFollow struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	StoreID   string    `json:"store_id" firestore:"storeId"`
	StoreSlug string    `json:"store_slug" firestore:"storeSlug"`
	StoreName string    `json:"store_name" firestore:"storeName"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type UserFollowWithStore struct {
	UserFollow
	Store *Store `json:"store,omitempty"`
}
