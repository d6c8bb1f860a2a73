package service

import (
	"fmt"

	"go.uber.org/zap"

	"linkcut/internal/apperr"
	"linkcut/internal/entities"
	"linkcut/internal/models"
	"linkcut/internal/repository"
)

// URLService defines the interface for URL business logic
type URLService interface {
	Create(req *models.CreateURLRequest, user *entities.User) (*models.URLResponse, bool, error)
	Redirect(shortCode, clientInfo string, user *entities.User) (string, error)
	Stats(shortCode string, user *entities.User, fullInfo bool, maxResult, offset int) (*models.URLStatsResponse, error)
	UpdateType(shortCode, urlType string, user *entities.User) (*models.URLResponse, error)
	SoftDelete(shortCode string, user *entities.User) error
	GetUserURLs(userID int64) ([]*models.URLResponse, error)
	Ping() error
}

type urlService struct {
	urls        repository.URLRepository
	connections repository.ConnectionRepository
	baseURL     string
	log         *zap.Logger
}

// NewURLService creates a new URL service
func NewURLService(urls repository.URLRepository, connections repository.ConnectionRepository, baseURL string, log *zap.Logger) URLService {
	return &urlService{
		urls:        urls,
		connections: connections,
		baseURL:     baseURL,
		log:         log,
	}
}

// Create shortens an original URL. Creation is idempotent within an owner
// scope: when an equivalent record already exists for the caller, that
// record is returned and the second result is false.
func (s *urlService) Create(req *models.CreateURLRequest, user *entities.User) (*models.URLResponse, bool, error) {
	var userID *int64
	if user != nil {
		userID = &user.ID
	}

	candidates, err := s.urls.FindByOriginalURL(req.OriginalURL, userID)
	if err != nil {
		return nil, false, err
	}
	if existing := ResolveExisting(candidates, user); existing != nil {
		s.log.Info("returning existing url",
			zap.String("short_code", existing.ShortCode),
			zap.String("original_url", existing.OriginalURL))
		return s.toResponse(existing), false, nil
	}

	urlType := req.URLType
	if urlType == "" {
		urlType = entities.URLTypePublic
	}
	// A URL cannot be private without an owner
	if user == nil && urlType == entities.URLTypePrivate {
		urlType = entities.URLTypePublic
	}

	shortCode, err := uniqueShortCode(s.urls)
	if err != nil {
		return nil, false, err
	}

	url, err := s.urls.Create(req.OriginalURL, shortCode, urlType, userID)
	if err != nil {
		return nil, false, err
	}

	s.log.Info("created new url", zap.String("short_code", url.ShortCode))
	return s.toResponse(url), true, nil
}

// findLive resolves a short code to a logically present record
func (s *urlService) findLive(shortCode string) (*entities.URL, error) {
	url, err := s.urls.FindByShortCode(shortCode)
	if err != nil {
		return nil, err
	}
	if !URLExists(url) {
		return nil, apperr.ErrNotFound
	}
	return url, nil
}

// Redirect resolves a short code to its original URL and records the
// access. Existence is checked before the read permission.
func (s *urlService) Redirect(shortCode, clientInfo string, user *entities.User) (string, error) {
	url, err := s.findLive(shortCode)
	if err != nil {
		return "", err
	}
	if !CanRead(url, user) {
		return "", apperr.ErrForbidden
	}

	if _, err := s.connections.Create(url.ID, clientInfo); err != nil {
		return "", err
	}

	s.log.Info("redirecting",
		zap.String("short_code", shortCode),
		zap.String("original_url", url.OriginalURL))
	return url.OriginalURL, nil
}

// Stats returns the total redirect count and, when fullInfo is set, a
// paged slice of individual connection entries.
func (s *urlService) Stats(shortCode string, user *entities.User, fullInfo bool, maxResult, offset int) (*models.URLStatsResponse, error) {
	url, err := s.findLive(shortCode)
	if err != nil {
		return nil, err
	}
	if !CanRead(url, user) {
		return nil, apperr.ErrForbidden
	}

	count, err := s.connections.CountByURLID(url.ID)
	if err != nil {
		return nil, err
	}
	stats := &models.URLStatsResponse{NumberOfCalls: count}

	if fullInfo {
		conns, err := s.connections.GetByURLID(url.ID, offset, maxResult)
		if err != nil {
			return nil, err
		}
		details := make([]models.ConnectionInfo, 0, len(conns))
		for _, conn := range conns {
			details = append(details, models.ConnectionInfo{
				Datetime: conn.ConnectedAt,
				Client:   conn.ClientInfo,
			})
		}
		stats.Details = details
	}

	return stats, nil
}

// UpdateType changes the visibility of a URL. Existence is checked before
// the update permission.
func (s *urlService) UpdateType(shortCode, urlType string, user *entities.User) (*models.URLResponse, error) {
	if urlType != entities.URLTypePublic && urlType != entities.URLTypePrivate {
		return nil, fmt.Errorf("url_type must be %q or %q: %w",
			entities.URLTypePublic, entities.URLTypePrivate, apperr.ErrValidation)
	}

	url, err := s.findLive(shortCode)
	if err != nil {
		return nil, err
	}
	if !CanUpdate(url, user) {
		return nil, apperr.ErrForbidden
	}

	updated, err := s.urls.UpdateURLType(url.ID, urlType)
	if err != nil {
		return nil, err
	}

	s.log.Info("updated url", zap.String("short_code", shortCode), zap.String("url_type", urlType))
	return s.toResponse(updated), nil
}

// SoftDelete marks a URL as deleted without removing the row
func (s *urlService) SoftDelete(shortCode string, user *entities.User) error {
	url, err := s.findLive(shortCode)
	if err != nil {
		return err
	}
	if !CanUpdate(url, user) {
		return apperr.ErrForbidden
	}

	if err := s.urls.MarkDeleted(url.ID); err != nil {
		return err
	}

	s.log.Info("url marked as deleted", zap.String("short_code", shortCode))
	return nil
}

// GetUserURLs returns the live URLs owned by a user
func (s *urlService) GetUserURLs(userID int64) ([]*models.URLResponse, error) {
	urls, err := s.urls.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.URLResponse, len(urls))
	for i, url := range urls {
		responses[i] = s.toResponse(url)
	}
	return responses, nil
}

// Ping verifies storage connectivity
func (s *urlService) Ping() error {
	return s.urls.Ping()
}

func (s *urlService) toResponse(url *entities.URL) *models.URLResponse {
	return &models.URLResponse{
		ShortCode:   url.ShortCode,
		ShortURL:    fmt.Sprintf("%s/%s", s.baseURL, url.ShortCode),
		OriginalURL: url.OriginalURL,
		URLType:     url.URLType,
		UserID:      url.UserID,
		CreatedAt:   url.CreatedAt,
	}
}
