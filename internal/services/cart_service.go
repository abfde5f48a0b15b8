// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/cart"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

type CartService struct {
	db *gorm.DB
}

type CartView struct {
	Lines     []cart.Line `json:"lines"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// LoadLedger reconstructs the in-memory ledger from the persisted cart
// rows, oldest first so insertion order survives restarts.
func (s *CartService) LoadLedger(tx *gorm.DB, userID uuid.UUID) (*cart.Ledger, error) {
	var items []models.CartItem
	err := tx.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, cart.Line{Product: item.Product, Quantity: item.Quantity})
	}
	return cart.New(lines...), nil
}

func (s *CartService) GetCart(userID uuid.UUID) (*CartView, error) {
	ledger, err := s.LoadLedger(s.db, userID)
	if err != nil {
		return nil, err
	}
	return viewOf(ledger), nil
}

// AddOne runs the ledger's add rules against the current stock, then
// persists the surviving quantity. Guard failures leave the rows alone.
func (s *CartService) AddOne(userID, productID uuid.UUID) (*CartView, error) {
	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to load product: %w", err)
		}

		ledger, err := s.LoadLedger(tx, userID)
		if err != nil {
			return err
		}
		if err := ledger.AddOne(product); err != nil {
			return err
		}

		quantity := quantityOf(ledger, productID)
		var item models.CartItem
		err = tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to insert cart line: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to load cart line: %w", err)
		default:
			if err := tx.Model(&item).Update("quantity", quantity).Error; err != nil {
				return fmt.Errorf("failed to update cart line: %w", err)
			}
		}

		view = viewOf(ledger)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveOne decrements or drops the line. Removing an absent product is
// a no-op, matching the ledger.
func (s *CartService) RemoveOne(userID, productID uuid.UUID) (*CartView, error) {
	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ledger, err := s.LoadLedger(tx, userID)
		if err != nil {
			return err
		}
		ledger.RemoveOne(productID)

		quantity := quantityOf(ledger, productID)
		if quantity == 0 {
			err = tx.Where("user_id = ? AND product_id = ?", userID, productID).
				Delete(&models.CartItem{}).Error
			if err != nil {
				return fmt.Errorf("failed to delete cart line: %w", err)
			}
		} else {
			err = tx.Model(&models.CartItem{}).
				Where("user_id = ? AND product_id = ?", userID, productID).
				Update("quantity", quantity).Error
			if err != nil {
				return fmt.Errorf("failed to update cart line: %w", err)
			}
		}

		view = viewOf(ledger)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *CartService) ClearCart(userID uuid.UUID) error {
	return s.Clear(s.db, userID)
}

func (s *CartService) Clear(tx *gorm.DB, userID uuid.UUID) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func viewOf(ledger *cart.Ledger) *CartView {
	return &CartView{
		Lines:     ledger.Lines(),
		Total:     ledger.Total(),
		ItemCount: ledger.ItemCount(),
	}
}

func quantityOf(ledger *cart.Ledger, productID uuid.UUID) int {
	for _, line := range ledger.Lines() {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}
	return 0
}
