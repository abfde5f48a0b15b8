// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64       `json:"original_price,omitempty" gorm:"type:decimal(10,2)"`
	ImageURL      string         `json:"image_url" gorm:"type:text"`
	CategoryID    string         `json:"category_id" gorm:"size:50;index;not null"`
	Weight        string         `json:"weight" gorm:"size:50"`
	Description   string         `json:"description" gorm:"type:text"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	SalesCount    int64          `json:"sales_count" gorm:"default:0"`
	StockCount    int            `json:"stock_count" gorm:"default:0"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:Slug"`
}

// DiscountFraction is (original - price) / original, or 0 when no
// original price is set. Used by the discount sort.
func (p *Product) DiscountFraction() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	return (*p.OriginalPrice - p.Price) / *p.OriginalPrice
}

func (p *Product) InStock() bool {
	return p.StockCount > 0
}

// Category is static reference data seeded at startup and never mutated
// at runtime.
type Category struct {
	Slug  string `json:"id" gorm:"primaryKey;size:50"`
	Name  string `json:"name" gorm:"size:100;not null"`
	Icon  string `json:"icon" gorm:"size:20"`
	Color string `json:"color" gorm:"size:50"`
}

func (Category) TableName() string {
	return "categories"
}
