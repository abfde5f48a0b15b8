// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAddressPlaceholder is the sentinel shown before a customer has
// confirmed a real delivery address. It never passes delivery validation.
const DefaultAddressPlaceholder = "Set Location"

type User struct {
	BaseModel
	Name         string          `json:"name" gorm:"size:100;not null"`
	Phone        string          `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"`
	Role         UserRole        `json:"role" gorm:"type:varchar(20);default:'customer'"`
	Address      string          `json:"address" gorm:"type:text"`
	Theme        ThemePreference `json:"theme" gorm:"type:varchar(10);default:'light'"`
	LastLat      *float64        `json:"last_lat,omitempty"`
	LastLng      *float64        `json:"last_lng,omitempty"`
	LastLoginAt  *time.Time      `json:"last_login_at"`

	// Relationships
	CartItems []CartItem `json:"cart_items,omitempty" gorm:"foreignKey:UserID"`
	Orders    []Order    `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// HasDeliveryDetails reports whether the profile carries a usable
// delivery address and phone. Mirrors the checkout proceed guard.
func (u *User) HasDeliveryDetails() bool {
	return u.Address != "" && u.Address != DefaultAddressPlaceholder
}
