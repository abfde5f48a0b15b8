// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderTerminal is returned for an advance attempt on a
	// delivered order.
	ErrOrderTerminal = errors.New("order has already been delivered")
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// ListForUser returns the customer's orders newest first.
func (s *OrderService) ListForUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// ListAll is the admin view over every order, newest first, paginated.
func (s *OrderService) ListAll(params utils.PaginationParams) ([]models.Order, int64, error) {
	var total int64
	if err := s.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	err := s.db.Preload("Items").
		Order("created_at DESC").
		Scopes(utils.Paginate(params)).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, total, nil
}

// CountPending backs the admin badge for orders awaiting acceptance.
func (s *OrderService) CountPending() (int64, error) {
	var count int64
	err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending orders: %w", err)
	}
	return count, nil
}

func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

func (s *OrderService) GetForUser(id, userID uuid.UUID) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// AdvanceStatus moves an order exactly one step along the fixed
// progression. The row is locked for the read-modify-write so two
// admins clicking at once advance it once, not twice.
func (s *OrderService) AdvanceStatus(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to load order: %w", err)
		}

		next, ok := order.Status.Next()
		if !ok {
			return ErrOrderTerminal
		}

		if err := tx.Model(&order).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to advance order status: %w", err)
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"reference": order.Reference,
		"status":    order.Status,
	}).Info("Order status advanced")

	if err := s.db.Preload("Items").First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	return &order, nil
}
