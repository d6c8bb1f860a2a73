package models

import "time"

// URLResponse represents a URL record returned to callers
type URLResponse struct {
	ShortCode   string    `json:"short_code"`
	ShortURL    string    `json:"short_url"` // Full short URL (base URL + short code)
	OriginalURL string    `json:"original_url"`
	URLType     string    `json:"url_type"`
	UserID      *int64    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConnectionInfo is a single entry in the detailed usage statistics
type ConnectionInfo struct {
	Datetime time.Time `json:"datetime"`
	Client   string    `json:"client"`
}

// URLStatsResponse represents the response for URL usage statistics.
// Details is filled only when full info is explicitly requested.
type URLStatsResponse struct {
	NumberOfCalls int              `json:"number_of_calls"`
	Details       []ConnectionInfo `json:"details,omitempty"`
}
