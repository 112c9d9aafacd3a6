package entity

import (
	"time"
)

const (
	SwipeActionLike    = "like"
	SwipeActionDislike = "dislike"

	SwipeDirectionLeft  = "left"
	SwipeDirectionRight = "right"
)

// Swipe is an immutable record of a single like/dislike decision. Store,
// category and price are snapshotted at swipe time so analytics stay accurate
// even if the product changes later.
type Swipe struct {
	ID             string    `json:"id" firestore:"id"`
	UserID         string    `json:"user_id" firestore:"userId"`
	ProductID      string    `json:"product_id" firestore:"productId"`
	Action         string    `json:"action" firestore:"action"`
	SwipeDirection string    `json:"swipe_direction" firestore:"swipeDirection"`
	TimeSpent      int       `json:"time_spent" firestore:"timeSpent"`
	StoreSlug      string    `json:"store_slug" firestore:"storeSlug"`
	CategorySlug   string    `json:"category_slug" firestore:"categorySlug"`
	ProductPrice   float64   `json:"product_price" firestore:"productPrice"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

type SwipeWithProduct struct {
	Swipe
	Product *Product `json:"product,omitempty"`
}
