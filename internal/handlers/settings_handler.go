// internal/handlers/settings_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	storageService  *services.StorageService
}

func NewSettingsHandler(settingsService *services.SettingsService, storageService *services.StorageService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		storageService:  storageService,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load settings")
		return
	}
	utils.SuccessResponse(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	settings, err := h.settingsService.Update(&input)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update settings")
		return
	}
	utils.SuccessResponse(c, settings)
}

// UploadQRCode stores the UPI QR image; once the URL is saved, UPI
// becomes selectable at checkout.
func (h *SettingsHandler) UploadQRCode(c *gin.Context) {
	file, header, err := openUpload(c, "qr_code")
	if err != nil {
		utils.BadRequestResponse(c, "QR code image is required", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, "settings")
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	settings, err := h.settingsService.SetQRCodeURL(result.URL)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to save QR code")
		return
	}
	utils.SuccessResponse(c, settings)
}
