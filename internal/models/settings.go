// internal/models/settings.go
package models

// StoreSettings is a singleton row mutated only by the admin.
type StoreSettings struct {
	BaseModel
	StoreName    string `json:"store_name" gorm:"size:100;not null;default:'RoyalCart'"`
	UPIID        string `json:"upi_id,omitempty" gorm:"size:100"`
	UPIQRCodeURL string `json:"upi_qr_code_url,omitempty" gorm:"type:text"`
}

// UPIConfigured gates the method -> upi_qr checkout transition.
func (s *StoreSettings) UPIConfigured() bool {
	return s.UPIQRCodeURL != ""
}
