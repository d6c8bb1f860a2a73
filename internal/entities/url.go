package entities

import "time"

// URL visibility values, enforced by a CHECK constraint in the database.
const (
	URLTypePublic  = "public"
	URLTypePrivate = "private"
)

// URL represents a shortened URL entity in the database
type URL struct {
	ID          int64     `json:"id"`
	OriginalURL string    `json:"original_url"`
	ShortCode   string    `json:"short_code"`
	URLType     string    `json:"url_type"`
	Deleted     bool      `json:"-"` // Soft-delete flag, never exposed
	UserID      *int64    `json:"user_id,omitempty"` // Pointer allows nil (for anonymous URLs)
	CreatedAt   time.Time `json:"created_at"`
}
