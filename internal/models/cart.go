// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// CartItem is one persisted ledger line for a user's active cart.
// Quantity invariants (1 <= qty <= stock at insert time) are enforced by
// the cart ledger, not here.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null"`

	Product Product `json:"product" gorm:"foreignKey:ProductID"`
}
