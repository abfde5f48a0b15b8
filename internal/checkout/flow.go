// internal/checkout/flow.go

// Package checkout models the cart drawer's payment flow as an explicit
// state machine:
//
//	checkout -> method -> upi_qr -> processing
//	                   \-> processing (cash on delivery)
//
// Transitions either succeed atomically or leave the flow untouched.
// The whole order commit happens outside this package, after the
// simulated settlement; no partial-order state exists here.
package checkout

import (
	"errors"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

type Step string

const (
	StepCheckout   Step = "checkout"
	StepMethod     Step = "method"
	StepUPIQR      Step = "upi_qr"
	StepProcessing Step = "processing"
)

var (
	// ErrDeliveryDetailsRequired redirects the customer to the
	// address-capture flow instead of advancing.
	ErrDeliveryDetailsRequired = errors.New("delivery address or phone number is missing")
	// ErrUPINotConfigured is returned when the store has no QR image.
	ErrUPINotConfigured = errors.New("store has not configured UPI payments")
	// ErrEmptyCart blocks proceeding past cart review with nothing in it.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidTransition covers any action not allowed from the
	// current step, including cancel attempts mid-settlement.
	ErrInvalidTransition = errors.New("action not allowed in current checkout step")
)

// Flow is one customer's checkout session. It is not safe for
// concurrent use; the owning service serializes access.
type Flow struct {
	step     Step
	method   models.PaymentMethod
	upiTxnID string
}

func NewFlow() *Flow {
	return &Flow{step: StepCheckout}
}

func (f *Flow) Step() Step {
	if f.step == "" {
		return StepCheckout
	}
	return f.step
}

func (f *Flow) Method() models.PaymentMethod {
	return f.method
}

func (f *Flow) UPITransactionID() string {
	return f.upiTxnID
}

// Proceed moves checkout -> method. Guarded by cart contents and
// delivery-detail completeness; a guard failure reports which capture
// flow to open and does not advance.
func (f *Flow) Proceed(cartEmpty bool, detailsComplete bool) error {
	if f.Step() != StepCheckout {
		return ErrInvalidTransition
	}
	if cartEmpty {
		return ErrEmptyCart
	}
	if !detailsComplete {
		return ErrDeliveryDetailsRequired
	}
	f.step = StepMethod
	return nil
}

// ChooseUPI moves method -> upi_qr, refused unless the store carries a
// configured QR image (the customer is told to use cash on delivery).
func (f *Flow) ChooseUPI(qrConfigured bool) error {
	if f.Step() != StepMethod {
		return ErrInvalidTransition
	}
	if !qrConfigured {
		return ErrUPINotConfigured
	}
	f.method = models.PaymentMethodUPI
	f.step = StepUPIQR
	return nil
}

// ChooseCOD moves method -> processing directly; there is no
// intermediate screen on the cash path.
func (f *Flow) ChooseCOD() error {
	if f.Step() != StepMethod {
		return ErrInvalidTransition
	}
	f.method = models.PaymentMethodCOD
	f.step = StepProcessing
	return nil
}

// ConfirmUPI moves upi_qr -> processing on "I've paid". The transaction
// id is free text and not validated.
func (f *Flow) ConfirmUPI(txnID string) error {
	if f.Step() != StepUPIQR {
		return ErrInvalidTransition
	}
	f.upiTxnID = txnID
	f.step = StepProcessing
	return nil
}

// Back returns to cart review from any step except processing; there is
// no cancel mid-settlement.
func (f *Flow) Back() error {
	switch f.Step() {
	case StepProcessing:
		return ErrInvalidTransition
	case StepCheckout:
		return nil
	}
	f.Reset()
	return nil
}

// Reset returns the flow to cart review and clears the chosen method
// and transaction id. Called after a successful finalize and by Back.
func (f *Flow) Reset() {
	f.step = StepCheckout
	f.method = ""
	f.upiTxnID = ""
}
