package entity

import (
	"time"
)

const (
	ProductStatusPending  = "pending"
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusRejected = "rejected"
)

type Product struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Image       string  `json:"image" firestore:"image"`
	Price       float64 `json:"price" firestore:"price"`
	IsOnSale    bool    `json:"is_on_sale" firestore:"isOnSale"`
	SalePrice   float64 `json:"sale_price,omitempty" firestore:"salePrice,omitempty"`

	AvailableSizes  []string `json:"available_sizes,omitempty" firestore:"availableSizes,omitempty"`
	Size            string   `json:"size,omitempty" firestore:"size,omitempty"`
	AvailableColors []string `json:"available_colors,omitempty" firestore:"availableColors,omitempty"`
	StockAmount     int      `json:"stock_amount" firestore:"stockAmount"`

	TotalLikes    int `json:"total_likes" firestore:"totalLikes"`
	TotalDislikes int `json:"total_dislikes" firestore:"totalDislikes"`
	TotalViews    int `json:"total_views" firestore:"totalViews"`

	Status          string `json:"status" firestore:"status"`
	IsApproved      bool   `json:"is_approved" firestore:"isApproved"`
	RejectionReason string `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`

	// Slug is the primary reference; the ID is kept for efficient querying.
	StoreSlug    string `json:"store_slug" firestore:"storeSlug"`
	StoreID      string `json:"store_id" firestore:"storeId"`
	CategorySlug string `json:"category_slug" firestore:"categorySlug"`
	CategoryID   string `json:"category_id" firestore:"categoryId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// EffectivePrice is the sale price when the product is on sale, the regular price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.IsOnSale {
		return p.SalePrice
	}
	return p.Price
}
