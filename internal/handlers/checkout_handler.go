// internal/handlers/checkout_handler.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/srinivasroopa42-commits/royal-cart/internal/checkout"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

type chooseMethodRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

type confirmUPIRequest struct {
	TransactionID string `json:"transaction_id"`
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

func (h *CheckoutHandler) State(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	state, err := h.checkoutService.State(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load checkout state")
		return
	}
	utils.SuccessResponse(c, state)
}

func (h *CheckoutHandler) Proceed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	state, err := h.checkoutService.Proceed(userID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	utils.SuccessResponse(c, state)
}

func (h *CheckoutHandler) ChooseMethod(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req chooseMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Method.Valid() {
		utils.BadRequestResponse(c, "Invalid payment method", nil)
		return
	}

	state, order, err := h.checkoutService.ChooseMethod(c.Request.Context(), userID, req.Method)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	if order != nil {
		utils.CreatedResponse(c, order)
		return
	}
	utils.SuccessResponse(c, state)
}

func (h *CheckoutHandler) ConfirmUPI(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req confirmUPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	order, err := h.checkoutService.ConfirmUPI(c.Request.Context(), userID, req.TransactionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	utils.CreatedResponse(c, order)
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	state, err := h.checkoutService.Back(userID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	utils.SuccessResponse(c, state)
}

// respondCheckoutError maps the flow's sentinel errors to stable codes
// the storefront branches on.
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		utils.UnprocessableResponse(c, "CART_EMPTY", err.Error())
	case errors.Is(err, checkout.ErrDeliveryDetailsRequired):
		utils.UnprocessableResponse(c, "DELIVERY_DETAILS_REQUIRED", err.Error())
	case errors.Is(err, checkout.ErrUPINotConfigured):
		utils.ConflictResponse(c, "UPI_NOT_CONFIGURED", err.Error())
	case errors.Is(err, checkout.ErrInvalidTransition):
		utils.ConflictResponse(c, "INVALID_CHECKOUT_STEP", err.Error())
	default:
		utils.InternalErrorResponse(c, "Checkout failed")
	}
}
