// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/cart"
	"github.com/srinivasroopa42-commits/royal-cart/internal/checkout"
	"github.com/srinivasroopa42-commits/royal-cart/internal/config"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

var ErrUserNotFound = errors.New("user not found")

// CheckoutService owns the per-customer checkout flows. Flows are
// in-memory: a restart drops everyone back to cart review, which is
// safe because no order exists until settlement completes.
type CheckoutService struct {
	db       *gorm.DB
	cfg      *config.Config
	carts    *CartService
	settings *SettingsService

	mu    sync.Mutex
	flows map[uuid.UUID]*checkout.Flow
}

type CheckoutState struct {
	Step        checkout.Step        `json:"step"`
	Method      models.PaymentMethod `json:"method,omitempty"`
	CartTotal   float64              `json:"cart_total"`
	DeliveryFee float64              `json:"delivery_fee"`
	Total       float64              `json:"total"`
	UPIID       string               `json:"upi_id,omitempty"`
	UPIQRURL    string               `json:"upi_qr_url,omitempty"`
}

func NewCheckoutService(db *gorm.DB, cfg *config.Config, carts *CartService, settings *SettingsService) *CheckoutService {
	return &CheckoutService{
		db:       db,
		cfg:      cfg,
		carts:    carts,
		settings: settings,
		flows:    make(map[uuid.UUID]*checkout.Flow),
	}
}

func (s *CheckoutService) flowFor(userID uuid.UUID) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[userID]
	if !ok {
		flow = checkout.NewFlow()
		s.flows[userID] = flow
	}
	return flow
}

// State reports the current step with the priced totals. On the QR step
// it also carries the store's UPI details.
func (s *CheckoutService) State(userID uuid.UUID) (*CheckoutState, error) {
	flow := s.flowFor(userID)

	ledger, err := s.carts.LoadLedger(s.db, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	state := &CheckoutState{
		Step:        flow.Step(),
		Method:      flow.Method(),
		CartTotal:   ledger.Total(),
		DeliveryFee: s.cfg.Store.DeliveryFee,
		Total:       ledger.Total() + s.cfg.Store.DeliveryFee,
	}
	s.mu.Unlock()

	if state.Step == checkout.StepUPIQR {
		settings, err := s.settings.Get()
		if err != nil {
			return nil, err
		}
		state.UPIID = settings.UPIID
		state.UPIQRURL = settings.UPIQRCodeURL
	}
	return state, nil
}

// Proceed moves cart review to method selection, re-checking the cart
// and the customer's delivery details at the moment of the click.
func (s *CheckoutService) Proceed(userID uuid.UUID) (*CheckoutState, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	ledger, err := s.carts.LoadLedger(s.db, userID)
	if err != nil {
		return nil, err
	}
	detailsComplete := user.HasDeliveryDetails() && utils.ValidDeliveryPhone(user.Phone)

	flow := s.flowFor(userID)
	s.mu.Lock()
	err = flow.Proceed(ledger.Empty(), detailsComplete)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.State(userID)
}

// ChooseMethod branches the flow. UPI shows the QR step; cash on
// delivery settles immediately and returns the placed order.
func (s *CheckoutService) ChooseMethod(ctx context.Context, userID uuid.UUID, method models.PaymentMethod) (*CheckoutState, *models.Order, error) {
	flow := s.flowFor(userID)

	switch method {
	case models.PaymentMethodUPI:
		settings, err := s.settings.Get()
		if err != nil {
			return nil, nil, err
		}
		s.mu.Lock()
		err = flow.ChooseUPI(settings.UPIConfigured())
		s.mu.Unlock()
		if err != nil {
			return nil, nil, err
		}
		state, err := s.State(userID)
		return state, nil, err

	case models.PaymentMethodCOD:
		s.mu.Lock()
		err := flow.ChooseCOD()
		s.mu.Unlock()
		if err != nil {
			return nil, nil, err
		}
		order, err := s.settle(ctx, userID, flow)
		return nil, order, err

	default:
		return nil, nil, checkout.ErrInvalidTransition
	}
}

// ConfirmUPI is the customer's "I've paid" click. The transaction id is
// recorded as-is; settlement is simulated, not verified.
func (s *CheckoutService) ConfirmUPI(ctx context.Context, userID uuid.UUID, txnID string) (*models.Order, error) {
	flow := s.flowFor(userID)

	s.mu.Lock()
	err := flow.ConfirmUPI(txnID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, userID, flow)
}

func (s *CheckoutService) Back(userID uuid.UUID) (*CheckoutState, error) {
	flow := s.flowFor(userID)

	s.mu.Lock()
	err := flow.Back()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.State(userID)
}

// settle simulates payment settlement and then commits the order
// atomically: order row, item snapshots and cart clear in one
// transaction, nothing else. The flow resets on both success and
// failure so the customer is never stuck on the processing screen.
func (s *CheckoutService) settle(ctx context.Context, userID uuid.UUID, flow *checkout.Flow) (*models.Order, error) {
	defer func() {
		s.mu.Lock()
		flow.Reset()
		s.mu.Unlock()
	}()

	if delay := s.cfg.Store.SettlementDelay; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	method := flow.Method()
	txnID := flow.UPITransactionID()
	s.mu.Unlock()

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return ErrUserNotFound
		}

		ledger, err := s.carts.LoadLedger(tx, userID)
		if err != nil {
			return err
		}
		if ledger.Empty() {
			return checkout.ErrEmptyCart
		}

		reference, err := utils.GenerateOrderReference()
		if err != nil {
			return err
		}

		order = assembleOrder(&user, ledger.Lines(), s.cfg.Store.DeliveryFee, method, txnID, reference)
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return s.carts.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"reference": order.Reference,
		"method":    order.PaymentMethod,
		"total":     order.Total,
	}).Info("Order placed")

	return order, nil
}

// assembleOrder snapshots the customer and cart lines into an immutable
// pending order. Settlement writes nothing beyond the order itself and
// the cart clear; catalog sales and stock figures stay admin-set.
func assembleOrder(user *models.User, lines []cart.Line, deliveryFee float64, method models.PaymentMethod, txnID, reference string) *models.Order {
	order := &models.Order{
		Reference:        reference,
		UserID:           user.ID,
		CustomerName:     user.Name,
		CustomerPhone:    user.Phone,
		Address:          user.Address,
		Status:           models.OrderStatusPending,
		PaymentMethod:    method,
		UPITransactionID: txnID,
	}

	var itemsTotal float64
	for _, line := range lines {
		itemsTotal += line.Total()
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			UnitPrice:   line.Product.Price,
			Weight:      line.Product.Weight,
			ImageURL:    line.Product.ImageURL,
			Quantity:    line.Quantity,
		})
	}
	order.Total = itemsTotal + deliveryFee
	return order
}
