package entities

import "time"

// ClientConnection is one row per successful redirect. Append-only;
// rows are never updated or deleted.
type ClientConnection struct {
	ID          int64     `json:"id"`
	ConnectedAt time.Time `json:"connected_at"`
	ClientInfo  string    `json:"client_info"`
	URLID       int64     `json:"url_id"`
}
