// internal/handlers/order_handler.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns the caller's own orders, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orders, err := h.orderService.ListForUser(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load orders")
		return
	}
	utils.SuccessResponse(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order id", nil)
		return
	}

	order, err := h.orderService.GetForUser(id, userID)
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, order)
}

// AdminList is the full registry view with pagination and the pending
// badge count.
func (h *OrderHandler) AdminList(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	orders, total, err := h.orderService.ListAll(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load orders")
		return
	}
	pending, err := h.orderService.CountPending()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load orders")
		return
	}

	result := utils.NewPaginationResult(orders, params, total)
	utils.SetPaginationHeaders(c, result)
	utils.SuccessResponseWithMeta(c, orders, gin.H{
		"pending_orders": pending,
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

// AdvanceStatus moves an order one step forward. Delivered orders
// refuse with ORDER_TERMINAL.
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order id", nil)
		return
	}

	order, err := h.orderService.AdvanceStatus(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.NotFoundResponse(c, "Order")
		case errors.Is(err, services.ErrOrderTerminal):
			utils.ConflictResponse(c, "ORDER_TERMINAL", err.Error())
		default:
			utils.InternalErrorResponse(c, "Failed to advance order")
		}
		return
	}
	utils.SuccessResponse(c, order)
}
