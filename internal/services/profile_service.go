// internal/services/profile_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

type ProfileService struct {
	db *gorm.DB
}

type DeliveryDetailsInput struct {
	Address string `json:"address" validate:"required,delivery_address"`
	Phone   string `json:"phone" validate:"required,delivery_phone"`
}

type CoordinatesInput struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateDeliveryDetails saves a validated address and phone pair. Both
// are captured together; checkout's proceed guard reads them back.
func (s *ProfileService) UpdateDeliveryDetails(userID uuid.UUID, input *DeliveryDetailsInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	user.Address = input.Address
	user.Phone = input.Phone
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update delivery details: %w", err)
	}
	return user, nil
}

func (s *ProfileService) UpdateTheme(userID uuid.UUID, theme models.ThemePreference) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	user.Theme = theme
	if err := s.db.Model(user).Update("theme", theme).Error; err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}
	return user, nil
}

// UpdateCoordinates records the last device location so the assistant
// can ground its address suggestions.
func (s *ProfileService) UpdateCoordinates(userID uuid.UUID, input *CoordinatesInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	user.LastLat = &input.Latitude
	user.LastLng = &input.Longitude
	err = s.db.Model(user).Updates(map[string]interface{}{
		"last_lat": input.Latitude,
		"last_lng": input.Longitude,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update coordinates: %w", err)
	}
	return user, nil
}
