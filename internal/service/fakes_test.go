package service

import (
	"time"

	"linkcut/internal/apperr"
	"linkcut/internal/entities"
)

// In-memory repository fakes used across the service tests.

type fakeURLRepo struct {
	urls    map[string]*entities.URL // keyed by short code
	nextID  int64
	pingErr error
}

func newFakeURLRepo() *fakeURLRepo {
	return &fakeURLRepo{
		urls:   make(map[string]*entities.URL),
		nextID: 1,
	}
}

func (f *fakeURLRepo) Create(originalURL, shortCode, urlType string, userID *int64) (*entities.URL, error) {
	url := &entities.URL{
		ID:          f.nextID,
		OriginalURL: originalURL,
		ShortCode:   shortCode,
		URLType:     urlType,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	f.nextID++
	f.urls[shortCode] = url
	return url, nil
}

func (f *fakeURLRepo) FindByShortCode(shortCode string) (*entities.URL, error) {
	if url, ok := f.urls[shortCode]; ok {
		return url, nil
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeURLRepo) FindByOriginalURL(originalURL string, userID *int64) ([]*entities.URL, error) {
	var out []*entities.URL
	for _, url := range f.urls {
		if url.OriginalURL != originalURL {
			continue
		}
		switch {
		case userID == nil && url.UserID == nil:
			out = append(out, url)
		case userID != nil && url.UserID != nil && *url.UserID == *userID:
			out = append(out, url)
		}
	}
	return out, nil
}

func (f *fakeURLRepo) UpdateURLType(id int64, urlType string) (*entities.URL, error) {
	for _, url := range f.urls {
		if url.ID == id {
			url.URLType = urlType
			return url, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeURLRepo) MarkDeleted(id int64) error {
	for _, url := range f.urls {
		if url.ID == id {
			url.Deleted = true
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeURLRepo) GetByUserID(userID int64) ([]*entities.URL, error) {
	var out []*entities.URL
	for _, url := range f.urls {
		if url.UserID != nil && *url.UserID == userID && !url.Deleted {
			out = append(out, url)
		}
	}
	return out, nil
}

func (f *fakeURLRepo) Ping() error { return f.pingErr }

type fakeConnRepo struct {
	conns  []*entities.ClientConnection
	nextID int64
}

func newFakeConnRepo() *fakeConnRepo {
	return &fakeConnRepo{nextID: 1}
}

func (f *fakeConnRepo) Create(urlID int64, clientInfo string) (*entities.ClientConnection, error) {
	conn := &entities.ClientConnection{
		ID:          f.nextID,
		ConnectedAt: time.Now(),
		ClientInfo:  clientInfo,
		URLID:       urlID,
	}
	f.nextID++
	f.conns = append(f.conns, conn)
	return conn, nil
}

func (f *fakeConnRepo) CountByURLID(urlID int64) (int, error) {
	count := 0
	for _, conn := range f.conns {
		if conn.URLID == urlID {
			count++
		}
	}
	return count, nil
}

func (f *fakeConnRepo) GetByURLID(urlID int64, offset, limit int) ([]*entities.ClientConnection, error) {
	var all []*entities.ClientConnection
	for _, conn := range f.conns {
		if conn.URLID == urlID {
			all = append(all, conn)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type fakeUserRepo struct {
	users  map[string]*entities.User // keyed by username
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*entities.User),
		nextID: 1,
	}
}

func (f *fakeUserRepo) Create(username, passwordHash string) (*entities.User, error) {
	if _, exists := f.users[username]; exists {
		return nil, apperr.ErrConflict
	}
	user := &entities.User{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.users[username] = user
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*entities.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return nil, apperr.ErrNotFound
}
