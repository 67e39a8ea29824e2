package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	apperrors "cofrinho/internal/errors"
	"cofrinho/internal/models"
)

// validateIDToken verifies a Google ID token against an audience.
// Swapped out in tests.
var validateIDToken = idtoken.Validate

// userService handles identity-related business logic.
type userService struct {
	db             *gorm.DB
	googleClientID string
}

// NewUserService creates a new UserServicer. An empty googleClientID
// disables the Google sign-in path.
func NewUserService(db *gorm.DB, googleClientID string) UserServicer {
	return &userService{db: db, googleClientID: googleClientID}
}

// Register creates a new password-based user.
func (s *userService) Register(email, password, displayName string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:       strings.ToLower(email),
		Password:    string(hashedPassword),
		DisplayName: displayName,
		Provider:    models.AuthProviderPassword,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// AttemptLogin verifies the credentials and returns the user. Failures
// are uniformly reported as invalid credentials.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Google-only accounts have no password to check against.
	if user.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.touchLastLogin(&user)
	return &user, nil
}

// SignInWithGoogle verifies the ID token issued by Google and returns the
// matching user, creating one on first sign-in.
func (s *userService) SignInWithGoogle(ctx context.Context, idToken string) (*models.User, error) {
	if s.googleClientID == "" {
		return nil, apperrors.ErrGoogleNotConfigured
	}

	payload, err := validateIDToken(ctx, idToken, s.googleClientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidIDToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.ErrInvalidIDToken
	}
	name, _ := payload.Claims["name"].(string)

	var user models.User
	err = s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:       strings.ToLower(email),
			DisplayName: name,
			Provider:    models.AuthProviderGoogle,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.touchLastLogin(&user)
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// StoreRefreshTokenHash persists the SHA-256 hash of the user's current
// refresh token.
func (s *userService) StoreRefreshTokenHash(userID, tokenHash string) error {
	err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("refresh_token_hash", tokenHash).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash for a user.
func (s *userService) GetRefreshTokenHash(userID string) (string, error) {
	var user models.User
	if err := s.db.Select("refresh_token_hash").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.RefreshTokenHash, nil
}

// ClearRefreshToken invalidates the user's refresh token on sign-out.
func (s *userService) ClearRefreshToken(userID string) error {
	return s.StoreRefreshTokenHash(userID, "")
}

func (s *userService) touchLastLogin(user *models.User) {
	now := time.Now()
	user.LastLoginAt = &now
	// Best effort; login still succeeds if the timestamp write fails.
	_ = s.db.Model(user).Update("last_login_at", now).Error
}
