package models

// CreateURLRequest represents the request body for creating a short URL
type CreateURLRequest struct {
	OriginalURL string `json:"original_url" binding:"required"`
	URLType     string `json:"url_type" binding:"omitempty,oneof=public private"` // Defaults to public
}

// UpdateURLRequest represents the request body for changing URL visibility
type UpdateURLRequest struct {
	URLType string `json:"url_type" binding:"required,oneof=public private"`
}
