// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/config"
	"github.com/clothify/clothify-backend/internal/models"
	"github.com/clothify/clothify-backend/internal/utils"
)

// Activation failures the shim translates into client-facing statuses.
var (
	ErrActivationInvalid = errors.New("invalid activation link")
	ErrActivationExpired = errors.New("activation link has expired")
	ErrAlreadyActivated  = errors.New("account is already activated")
)

const activationTokenTTL = 72 * time.Hour

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return nil, errors.New("user with this email already exists")
	}

	// Accounts stay inactive until the activation link is followed
	token, err := utils.GenerateActivationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate activation token: %w", err)
	}
	expiresAt := time.Now().Add(activationTokenTTL)

	user := &models.User{
		Email:               req.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		IsActive:            false,
		ActivationToken:     token,
		ActivationExpiresAt: &expiresAt,
	}

	// Set password
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Save user
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Send activation email (async)
	go s.sendActivationEmail(user)

	return user, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Find user by email
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, errors.New("account is not activated")
	}

	// Verify password
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Update last login time; a failure here must not block the login
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Save(&user).Error; err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to record last login time")
	}

	return s.issueTokens(&user)
}

func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	// Validate refresh token
	userIDStr, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	// Find user
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.IsActive {
		return nil, errors.New("account is not activated")
	}

	return s.issueTokens(&user)
}

// Activate consumes a single-use activation token. The uid and token arrive
// from the activation link path, so both are treated as untrusted input.
func (s *AuthService) Activate(uidStr, token string) error {
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		return ErrActivationInvalid
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivationInvalid
		}
		return fmt.Errorf("database error: %w", err)
	}

	if user.IsActive {
		return ErrAlreadyActivated
	}

	if token == "" || user.ActivationToken != token {
		return ErrActivationInvalid
	}

	if user.ActivationExpiresAt != nil && user.ActivationExpiresAt.Before(time.Now()) {
		return ErrActivationExpired
	}

	user.IsActive = true
	user.ActivationToken = ""
	user.ActivationExpiresAt = nil

	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}

	return nil
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, user.IsStaff, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

func (s *AuthService) sendActivationEmail(user *models.User) {
	// TODO: send through a real mail provider once one is provisioned
	activationURL := fmt.Sprintf("%s/activate/%s/%s", s.cfg.Frontend.BaseURL, user.ID, user.ActivationToken)
	fmt.Printf("Account activation URL for %s: %s\n", user.Email, activationURL)
}
