// internal/checkout/flow_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

func TestZeroValueStartsAtCheckout(t *testing.T) {
	var f Flow
	assert.Equal(t, StepCheckout, f.Step())
}

func TestProceedGuards(t *testing.T) {
	f := NewFlow()

	err := f.Proceed(true, true)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StepCheckout, f.Step())

	err = f.Proceed(false, false)
	assert.ErrorIs(t, err, ErrDeliveryDetailsRequired)
	assert.Equal(t, StepCheckout, f.Step())

	require.NoError(t, f.Proceed(false, true))
	assert.Equal(t, StepMethod, f.Step())
}

func TestUPIPath(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Proceed(false, true))

	err := f.ChooseUPI(false)
	assert.ErrorIs(t, err, ErrUPINotConfigured)
	assert.Equal(t, StepMethod, f.Step(), "refused selection stays on method")

	require.NoError(t, f.ChooseUPI(true))
	assert.Equal(t, StepUPIQR, f.Step())
	assert.Equal(t, models.PaymentMethodUPI, f.Method())

	require.NoError(t, f.ConfirmUPI("TXN-123"))
	assert.Equal(t, StepProcessing, f.Step())
	assert.Equal(t, "TXN-123", f.UPITransactionID())
}

func TestCODPathSkipsQR(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Proceed(false, true))
	require.NoError(t, f.ChooseCOD())

	assert.Equal(t, StepProcessing, f.Step())
	assert.Equal(t, models.PaymentMethodCOD, f.Method())
	assert.Empty(t, f.UPITransactionID())
}

func TestInvalidTransitions(t *testing.T) {
	f := NewFlow()

	assert.ErrorIs(t, f.ChooseUPI(true), ErrInvalidTransition)
	assert.ErrorIs(t, f.ChooseCOD(), ErrInvalidTransition)
	assert.ErrorIs(t, f.ConfirmUPI("x"), ErrInvalidTransition)

	require.NoError(t, f.Proceed(false, true))
	assert.ErrorIs(t, f.Proceed(false, true), ErrInvalidTransition)
	assert.ErrorIs(t, f.ConfirmUPI("x"), ErrInvalidTransition)
}

func TestBack(t *testing.T) {
	f := NewFlow()
	assert.NoError(t, f.Back(), "back from cart review is a no-op")

	require.NoError(t, f.Proceed(false, true))
	require.NoError(t, f.Back())
	assert.Equal(t, StepCheckout, f.Step())

	require.NoError(t, f.Proceed(false, true))
	require.NoError(t, f.ChooseUPI(true))
	require.NoError(t, f.Back())
	assert.Equal(t, StepCheckout, f.Step())
	assert.Empty(t, f.Method(), "back clears the chosen method")
}

func TestNoCancelMidSettlement(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Proceed(false, true))
	require.NoError(t, f.ChooseCOD())

	assert.ErrorIs(t, f.Back(), ErrInvalidTransition)
	assert.Equal(t, StepProcessing, f.Step())
}

func TestResetClearsEverything(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Proceed(false, true))
	require.NoError(t, f.ChooseUPI(true))
	require.NoError(t, f.ConfirmUPI("TXN-9"))

	f.Reset()
	assert.Equal(t, StepCheckout, f.Step())
	assert.Empty(t, f.Method())
	assert.Empty(t, f.UPITransactionID())
}
