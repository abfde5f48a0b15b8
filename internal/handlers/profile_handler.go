// internal/handlers/profile_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type ProfileHandler struct {
	profileService   *services.ProfileService
	assistantService *services.AssistantService
}

type themeRequest struct {
	Theme models.ThemePreference `json:"theme" binding:"required"`
}

func NewProfileHandler(profileService *services.ProfileService, assistantService *services.AssistantService) *ProfileHandler {
	return &ProfileHandler{
		profileService:   profileService,
		assistantService: assistantService,
	}
}

// UpdateDelivery captures the address and phone pair that unlocks
// checkout.
func (h *ProfileHandler) UpdateDelivery(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var input services.DeliveryDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	user, err := h.profileService.UpdateDeliveryDetails(userID, &input)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to save delivery details")
		return
	}
	utils.SuccessResponse(c, user)
}

func (h *ProfileHandler) UpdateTheme(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if req.Theme != models.ThemeLight && req.Theme != models.ThemeDark {
		utils.BadRequestResponse(c, "Invalid theme", nil)
		return
	}

	user, err := h.profileService.UpdateTheme(userID, req.Theme)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to save theme")
		return
	}
	utils.SuccessResponse(c, user)
}

func (h *ProfileHandler) UpdateCoordinates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var input services.CoordinatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	user, err := h.profileService.UpdateCoordinates(userID, &input)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to save location")
		return
	}
	utils.SuccessResponse(c, user)
}

// Locate turns the saved device coordinates into address suggestions so
// the customer can pick one instead of typing from scratch.
func (h *ProfileHandler) Locate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.profileService.Get(userID)
	if err != nil {
		utils.NotFoundResponse(c, "User")
		return
	}
	if user.LastLat == nil || user.LastLng == nil {
		utils.UnprocessableResponse(c, "LOCATION_UNKNOWN", "No device location on record")
		return
	}

	suggestions := h.assistantService.SuggestAddresses(
		c.Request.Context(), "my current location", user.LastLat, user.LastLng)
	utils.SuccessResponse(c, gin.H{"suggestions": suggestions})
}
