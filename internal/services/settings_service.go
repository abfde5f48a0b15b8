// internal/services/settings_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

type SettingsService struct {
	db *gorm.DB
}

type SettingsInput struct {
	StoreName string `json:"store_name" validate:"required,min=2,max=100"`
	UPIID     string `json:"upi_id" validate:"max=100"`
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the singleton settings row, creating it on first access.
func (s *SettingsService) Get() (*models.StoreSettings, error) {
	var settings models.StoreSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.StoreSettings{StoreName: "RoyalCart"}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create store settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}
	return &settings, nil
}

func (s *SettingsService) Update(input *SettingsInput) (*models.StoreSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.StoreName = input.StoreName
	settings.UPIID = input.UPIID
	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update store settings: %w", err)
	}
	return settings, nil
}

// SetQRCodeURL stores the uploaded QR image location. A non-empty URL
// is what unlocks UPI at checkout.
func (s *SettingsService) SetQRCodeURL(url string) (*models.StoreSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.UPIQRCodeURL = url
	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update QR code: %w", err)
	}
	return settings, nil
}
