// internal/handlers/assistant_handler.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
	cartService      *services.CartService
	profileService   *services.ProfileService
}

type smartShopRequest struct {
	Query string `json:"query" binding:"required"`
}

func NewAssistantHandler(assistantService *services.AssistantService, cartService *services.CartService, profileService *services.ProfileService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		cartService:      cartService,
		profileService:   profileService,
	}
}

// SuggestRecipes builds recipe ideas from whatever is in the cart.
// An empty cart short-circuits to an empty list without an API call.
func (h *AssistantHandler) SuggestRecipes(c *gin.Context) {
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

	ingredients := make([]string, 0, len(view.Lines))
	for _, line := range view.Lines {
		ingredients = append(ingredients, line.Product.Name)
	}

	recipes := h.assistantService.SuggestRecipes(c.Request.Context(), ingredients)
	utils.SuccessResponse(c, gin.H{"recipes": recipes})
}

// SmartShop maps a dish or occasion onto catalog products.
func (h *AssistantHandler) SmartShop(c *gin.Context) {
	var req smartShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	result, err := h.assistantService.SmartShop(c.Request.Context(), req.Query)
	if err != nil {
		utils.InternalErrorResponse(c, "Smart shop failed")
		return
	}
	utils.SuccessResponse(c, result)
}

// SuggestAddresses autocompletes a partial address from the ?q= input.
// Coordinates can come from the query string or fall back to the
// caller's last known device location.
func (h *AssistantHandler) SuggestAddresses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	input := c.Query("q")
	if input == "" {
		utils.BadRequestResponse(c, "Query parameter q is required", nil)
		return
	}

	lat := parseCoord(c.Query("lat"))
	lng := parseCoord(c.Query("lng"))
	if lat == nil || lng == nil {
		if user, err := h.profileService.Get(userID); err == nil {
			lat, lng = user.LastLat, user.LastLng
		}
	}

	suggestions := h.assistantService.SuggestAddresses(c.Request.Context(), input, lat, lng)
	utils.SuccessResponse(c, gin.H{"suggestions": suggestions})
}

func parseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
