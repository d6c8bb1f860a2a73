package service

import (
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"linkcut/internal/apperr"
	"linkcut/internal/entities"
	"linkcut/internal/jwt"
	"linkcut/internal/models"
	"linkcut/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.UserResponse, error)
	Login(username, password string) (*models.TokenResponse, error)
	CurrentUser(token string) (*entities.User, error)
	UserStatus(user *entities.User) (*models.UserStatusResponse, error)
}

type authService struct {
	users      repository.UserRepository
	urlService URLService
	jwtService *jwt.JWTService
	log        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, urlService URLService, jwtService *jwt.JWTService, log *zap.Logger) AuthService {
	return &authService{
		users:      users,
		urlService: urlService,
		jwtService: jwtService,
		log:        log,
	}
}

var (
	forbiddenChars = regexp.MustCompile(`[_,.<>?:\[\]()/\\{}|]`)
	upperChars     = regexp.MustCompile(`[A-Z]`)
	lowerChars     = regexp.MustCompile(`[a-z]`)
	digitChars     = regexp.MustCompile(`[0-9]`)
)

// validatePassword runs the password rules in sequence. The caller gets
// the same generic error whichever rule fails; the rule is only logged.
func (s *authService) validatePassword(password string) error {
	switch {
	case len(password) < 6:
		s.log.Warn("password rejected: too short")
	case forbiddenChars.MatchString(password):
		s.log.Warn("password rejected: forbidden characters")
	case !upperChars.MatchString(password):
		s.log.Warn("password rejected: no uppercase letter")
	case !lowerChars.MatchString(password):
		s.log.Warn("password rejected: no lowercase letter")
	case !digitChars.MatchString(password):
		s.log.Warn("password rejected: no digit")
	default:
		return nil
	}
	return apperr.ErrValidation
}

// Register creates a new user account. It does not log the caller in.
func (s *authService) Register(req *models.RegisterRequest) (*models.UserResponse, error) {
	existing, err := s.users.FindByUsername(req.Username)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		s.log.Info("registration rejected, username taken", zap.String("username", req.Username))
		return nil, apperr.ErrConflict
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(req.Username, string(hashed))
	if err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.String("username", user.Username))
	return &models.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login verifies credentials and issues a bearer token. The error never
// reveals which field was wrong.
func (s *authService) Login(username, password string) (*models.TokenResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		s.log.Info("login failed, user not found", zap.String("username", username))
		return nil, apperr.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Info("login failed, bad password", zap.String("username", username))
		return nil, apperr.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info("user authenticated", zap.String("username", username))
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

// CurrentUser resolves a bearer token to a user. An empty token means an
// anonymous caller, not an error. A present but invalid, expired or
// unresolvable token fails with an authentication error.
func (s *authService) CurrentUser(token string) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}

	username, err := s.jwtService.ValidateToken(token)
	if err != nil {
		s.log.Info("token rejected", zap.Error(err))
		return nil, apperr.ErrUnauthorized
	}

	user, err := s.users.FindByUsername(username)
	if errors.Is(err, apperr.ErrNotFound) {
		s.log.Info("token subject no longer resolves", zap.String("username", username))
		return nil, apperr.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UserStatus returns the user's profile together with its live URLs
func (s *authService) UserStatus(user *entities.User) (*models.UserStatusResponse, error) {
	urls, err := s.urlService.GetUserURLs(user.ID)
	if err != nil {
		return nil, err
	}
	if urls == nil {
		urls = []*models.URLResponse{}
	}

	return &models.UserStatusResponse{
		ID:       user.ID,
		Username: user.Username,
		URLs:     urls,
	}, nil
}
