// internal/handlers/cart_handler.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srinivasroopa42-commits/royal-cart/internal/cart"
	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	view, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load cart")
		return
	}
	utils.SuccessResponse(c, view)
}

// AddItem adds one unit. Stock guard failures come back as 409 with a
// code the storefront maps onto its toasts.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	view, err := h.cartService.AddOne(userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product")
		case errors.Is(err, cart.ErrOutOfStock):
			utils.ConflictResponse(c, "OUT_OF_STOCK", err.Error())
		case errors.Is(err, cart.ErrStockLimit):
			utils.ConflictResponse(c, "STOCK_LIMIT", err.Error())
		default:
			utils.InternalErrorResponse(c, "Failed to update cart")
		}
		return
	}
	utils.SuccessResponse(c, view)
}

// RemoveItem removes one unit; removing something not in the cart is
// fine and returns the unchanged cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	view, err := h.cartService.RemoveOne(userID, productID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update cart")
		return
	}
	utils.SuccessResponse(c, view)
}

// Clear empties the cart in one call (the drawer's "clear cart").
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.cartService.ClearCart(userID); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}
	view, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load cart")
		return
	}
	utils.SuccessResponse(c, view)
}
