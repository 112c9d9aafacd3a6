package entity

import (
	"time"
)

// SearchHistoryEntry is append-only and written best-effort; a failed write
// never fails the search that produced it.
type SearchHistoryEntry struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Query     string    `json:"query" firestore:"query"`
	Type      string    `json:"type" firestore:"type"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
