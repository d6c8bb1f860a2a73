package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"linkcut/internal/apperr"
	"linkcut/internal/entities"
)

// URLRepository defines the interface for URL database operations
type URLRepository interface {
	Create(originalURL, shortCode, urlType string, userID *int64) (*entities.URL, error)
	FindByShortCode(shortCode string) (*entities.URL, error)
	FindByOriginalURL(originalURL string, userID *int64) ([]*entities.URL, error)
	UpdateURLType(id int64, urlType string) (*entities.URL, error)
	MarkDeleted(id int64) error
	GetByUserID(userID int64) ([]*entities.URL, error)
	Ping() error
}

type urlRepository struct {
	db *sql.DB
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sql.DB) URLRepository {
	return &urlRepository{db: db}
}

const urlColumns = "id, original_url, short_code, url_type, deleted, user_id, created_at"

func scanURL(row interface{ Scan(...interface{}) error }) (*entities.URL, error) {
	var url entities.URL
	err := row.Scan(
		&url.ID,
		&url.OriginalURL,
		&url.ShortCode,
		&url.URLType,
		&url.Deleted,
		&url.UserID,
		&url.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// Create inserts a new URL into the database. Unique constraint
// violations (short code or (original_url, user_id)) surface as conflict.
func (r *urlRepository) Create(originalURL, shortCode, urlType string, userID *int64) (*entities.URL, error) {
	query := `
		INSERT INTO urls (original_url, short_code, url_type, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + urlColumns

	url, err := scanURL(r.db.QueryRow(query, originalURL, shortCode, urlType, userID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("duplicate url: %w", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create url: %w", err)
	}

	return url, nil
}

// FindByShortCode finds a URL by its short code. Soft-deleted rows are
// returned as stored; the existence check belongs to the service layer.
func (r *urlRepository) FindByShortCode(shortCode string) (*entities.URL, error) {
	query := `SELECT ` + urlColumns + ` FROM urls WHERE short_code = $1`

	url, err := scanURL(r.db.QueryRow(query, shortCode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find url: %w", err)
	}

	return url, nil
}

// FindByOriginalURL returns URLs matching the original address within the
// given owner scope. A nil userID matches ownerless rows only.
func (r *urlRepository) FindByOriginalURL(originalURL string, userID *int64) ([]*entities.URL, error) {
	query := `
		SELECT ` + urlColumns + `
		FROM urls
		WHERE original_url = $1 AND user_id IS NOT DISTINCT FROM $2
	`

	rows, err := r.db.Query(query, originalURL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find urls: %w", err)
	}
	defer rows.Close()

	var urls []*entities.URL
	for rows.Next() {
		url, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan url: %w", err)
		}
		urls = append(urls, url)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating urls: %w", err)
	}

	return urls, nil
}

// UpdateURLType changes the visibility flag and returns the updated row.
func (r *urlRepository) UpdateURLType(id int64, urlType string) (*entities.URL, error) {
	query := `
		UPDATE urls
		SET url_type = $1
		WHERE id = $2
		RETURNING ` + urlColumns

	url, err := scanURL(r.db.QueryRow(query, urlType, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update url: %w", err)
	}

	return url, nil
}

// MarkDeleted sets the soft-delete flag. The row is never removed.
func (r *urlRepository) MarkDeleted(id int64) error {
	result, err := r.db.Exec(`UPDATE urls SET deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark url deleted: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

// GetByUserID retrieves all live URLs owned by a user
func (r *urlRepository) GetByUserID(userID int64) ([]*entities.URL, error) {
	query := `
		SELECT ` + urlColumns + `
		FROM urls
		WHERE user_id = $1 AND deleted = FALSE
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get urls: %w", err)
	}
	defer rows.Close()

	var urls []*entities.URL
	for rows.Next() {
		url, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan url: %w", err)
		}
		urls = append(urls, url)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating urls: %w", err)
	}

	return urls, nil
}

// Ping verifies storage connectivity
func (r *urlRepository) Ping() error {
	return r.db.Ping()
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
