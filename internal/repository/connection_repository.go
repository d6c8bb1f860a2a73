package repository

import (
	"database/sql"
	"fmt"

	"linkcut/internal/entities"
)

// ConnectionRepository defines the interface for access-log operations.
// Connection rows are append-only.
type ConnectionRepository interface {
	Create(urlID int64, clientInfo string) (*entities.ClientConnection, error)
	CountByURLID(urlID int64) (int, error)
	GetByURLID(urlID int64, offset, limit int) ([]*entities.ClientConnection, error)
}

type connectionRepository struct {
	db *sql.DB
}

// NewConnectionRepository creates a new client connection repository
func NewConnectionRepository(db *sql.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// Create appends a connection row for a redirect
func (r *connectionRepository) Create(urlID int64, clientInfo string) (*entities.ClientConnection, error) {
	query := `
		INSERT INTO client_connections (url_id, client_info)
		VALUES ($1, $2)
		RETURNING id, connected_at, client_info, url_id
	`

	var conn entities.ClientConnection
	err := r.db.QueryRow(query, urlID, clientInfo).Scan(
		&conn.ID,
		&conn.ConnectedAt,
		&conn.ClientInfo,
		&conn.URLID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	return &conn, nil
}

// CountByURLID returns the total number of redirects recorded for a URL
func (r *connectionRepository) CountByURLID(urlID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM client_connections WHERE url_id = $1`, urlID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count connections: %w", err)
	}
	return count, nil
}

// GetByURLID returns a page of connection rows in storage order
func (r *connectionRepository) GetByURLID(urlID int64, offset, limit int) ([]*entities.ClientConnection, error) {
	query := `
		SELECT id, connected_at, client_info, url_id
		FROM client_connections
		WHERE url_id = $1
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(query, urlID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get connections: %w", err)
	}
	defer rows.Close()

	var conns []*entities.ClientConnection
	for rows.Next() {
		var conn entities.ClientConnection
		err := rows.Scan(&conn.ID, &conn.ConnectedAt, &conn.ClientInfo, &conn.URLID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		conns = append(conns, &conn)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connections: %w", err)
	}

	return conns, nil
}
