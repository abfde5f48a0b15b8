// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order is an immutable record of a finalized checkout; only Status
// moves, and only forward along OrderStatus.Next.
type Order struct {
	BaseModel
	Reference        string        `json:"reference" gorm:"uniqueIndex;size:12;not null"`
	UserID           uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	CustomerName     string        `json:"customer_name" gorm:"size:100;not null"`
	CustomerPhone    string        `json:"customer_phone" gorm:"size:20;not null"`
	Address          string        `json:"address" gorm:"type:text;not null"`
	Total            float64       `json:"total" gorm:"type:decimal(10,2);not null"`
	Status           OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentMethod    PaymentMethod `json:"payment_method" gorm:"type:varchar(10);not null"`
	UPITransactionID string        `json:"upi_transaction_id,omitempty" gorm:"size:100"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	User  User        `json:"-" gorm:"foreignKey:UserID"`
}

// OrderItem snapshots the product at order time; later catalog edits do
// not touch placed orders.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName string    `json:"product_name" gorm:"size:255;not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Weight      string    `json:"weight" gorm:"size:50"`
	ImageURL    string    `json:"image_url" gorm:"type:text"`
	Quantity    int       `json:"quantity" gorm:"not null"`
}

func (i *OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
