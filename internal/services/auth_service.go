// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/config"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

var (
	ErrPhoneTaken         = errors.New("an account with this phone number already exists")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
	jwt *utils.JWTManager
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,delivery_phone"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Address  string `json:"address" validate:"omitempty,delivery_address"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
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
		jwt: utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry),
	}
}

func (s *AuthService) JWTManager() *utils.JWTManager {
	return s.jwt
}

func (s *AuthService) Signup(req *SignupRequest) (*AuthResponse, error) {
	var existing models.User
	if err := s.db.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		return nil, ErrPhoneTaken
	}

	address := req.Address
	if address == "" {
		address = models.DefaultAddressPlaceholder
	}
	user := models.User{
		Name:    req.Name,
		Phone:   req.Phone,
		Role:    models.RoleCustomer,
		Address: address,
		Theme:   models.ThemeLight,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(&user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	var user models.User
	if err := s.db.Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return s.issueTokens(&user)
}

func (s *AuthService) Refresh(req *RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(&user)
}

// Logout wipes the session-scoped state: the persisted cart and the
// captured delivery details go back to their signed-out defaults.
func (s *AuthService) Logout(userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		updates := map[string]interface{}{
			"address":  models.DefaultAddressPlaceholder,
			"last_lat": nil,
			"last_lng": nil,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to reset delivery details: %w", err)
		}
		return nil
	})
}

func (s *AuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Name, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID, user.Name, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.cfg.JWT.AccessExpiry.Seconds()),
	}, nil
}
