package controllers

import (
	"linkcut/internal/entities"
	"linkcut/internal/models"
)

// Service fakes with canned results, used by the controller tests.

type fakeURLService struct {
	createResp *models.URLResponse
	created    bool
	createErr  error

	redirectURL string
	redirectErr error

	stats    *models.URLStatsResponse
	statsErr error

	updateResp *models.URLResponse
	updateErr  error

	deleteErr error
	pingErr   error

	// captured arguments
	gotFullInfo  bool
	gotMaxResult int
	gotOffset    int
	gotClient    string
	gotUser      *entities.User
}

func (f *fakeURLService) Create(req *models.CreateURLRequest, user *entities.User) (*models.URLResponse, bool, error) {
	f.gotUser = user
	return f.createResp, f.created, f.createErr
}

func (f *fakeURLService) Redirect(shortCode, clientInfo string, user *entities.User) (string, error) {
	f.gotClient = clientInfo
	f.gotUser = user
	return f.redirectURL, f.redirectErr
}

func (f *fakeURLService) Stats(shortCode string, user *entities.User, fullInfo bool, maxResult, offset int) (*models.URLStatsResponse, error) {
	f.gotFullInfo = fullInfo
	f.gotMaxResult = maxResult
	f.gotOffset = offset
	return f.stats, f.statsErr
}

func (f *fakeURLService) UpdateType(shortCode, urlType string, user *entities.User) (*models.URLResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeURLService) SoftDelete(shortCode string, user *entities.User) error {
	return f.deleteErr
}

func (f *fakeURLService) GetUserURLs(userID int64) ([]*models.URLResponse, error) {
	return nil, nil
}

func (f *fakeURLService) Ping() error { return f.pingErr }

type fakeAuthService struct {
	registerResp *models.UserResponse
	registerErr  error

	loginResp *models.TokenResponse
	loginErr  error

	currentUser    *entities.User
	currentUserErr error

	statusResp *models.UserStatusResponse
	statusErr  error
}

func (f *fakeAuthService) Register(req *models.RegisterRequest) (*models.UserResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthService) Login(username, password string) (*models.TokenResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) CurrentUser(token string) (*entities.User, error) {
	return f.currentUser, f.currentUserErr
}

func (f *fakeAuthService) UserStatus(user *entities.User) (*models.UserStatusResponse, error) {
	return f.statusResp, f.statusErr
}
