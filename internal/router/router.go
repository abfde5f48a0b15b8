// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/config"
	"github.com/srinivasroopa42-commits/royal-cart/internal/handlers"
	"github.com/srinivasroopa42-commits/royal-cart/internal/middleware"
	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
)

func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(db)
	settingsService := services.NewSettingsService(db)
	checkoutService := services.NewCheckoutService(db, cfg, cartService, settingsService)
	orderService := services.NewOrderService(db)
	profileService := services.NewProfileService(db)
	assistantService := services.NewAssistantService(cfg, catalogService)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, storageService)
	profileHandler := handlers.NewProfileHandler(profileService, assistantService)
	assistantHandler := handlers.NewAssistantHandler(assistantService, cartService, profileService)

	jwtManager := authService.JWTManager()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", "./uploads")

	v1 := r.Group("/v1")
	{
		// Public storefront
		v1.GET("/products", productHandler.List)
		v1.GET("/products/:id", productHandler.Get)
		v1.GET("/categories", productHandler.ListCategories)
		v1.GET("/settings", settingsHandler.Get)

		// Auth
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit(cfg.RateLimit.AuthRPM, cfg.RateLimit.AuthBurst))
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		authed := v1.Group("")
		authed.Use(middleware.AuthRequired(jwtManager))
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/auth/me", authHandler.Me)

			// Cart
			authed.GET("/cart", cartHandler.Get)
			authed.POST("/cart/items/:productID", cartHandler.AddItem)
			authed.DELETE("/cart/items/:productID", cartHandler.RemoveItem)
			authed.DELETE("/cart", cartHandler.Clear)

			// Checkout
			checkoutGroup := authed.Group("/checkout")
			{
				checkoutGroup.GET("", checkoutHandler.State)
				checkoutGroup.POST("/proceed", checkoutHandler.Proceed)
				checkoutGroup.POST("/method", middleware.AuditTrail(db, "checkout.method", "order"), checkoutHandler.ChooseMethod)
				checkoutGroup.POST("/confirm", middleware.AuditTrail(db, "checkout.confirm", "order"), checkoutHandler.ConfirmUPI)
				checkoutGroup.POST("/back", checkoutHandler.Back)
			}

			// Orders
			authed.GET("/orders", orderHandler.List)
			authed.GET("/orders/:id", orderHandler.Get)

			// Profile
			profile := authed.Group("/profile")
			{
				profile.PUT("/delivery", profileHandler.UpdateDelivery)
				profile.PUT("/theme", profileHandler.UpdateTheme)
				profile.PUT("/coords", profileHandler.UpdateCoordinates)
				profile.POST("/locate", profileHandler.Locate)
			}

			// Assistant
			assistant := authed.Group("/assistant")
			assistant.Use(middleware.AssistantRateLimit(cfg.RateLimit.AssistantRPM, cfg.RateLimit.AssistantBurst))
			{
				assistant.POST("/recipes", assistantHandler.SuggestRecipes)
				assistant.POST("/smart-shop", assistantHandler.SmartShop)
				assistant.GET("/addresses", assistantHandler.SuggestAddresses)
			}
		}

		// Admin
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(jwtManager), middleware.AdminRequired())
		{
			admin.POST("/products", middleware.AuditTrail(db, "product.create", "product"), productHandler.Create)
			admin.PUT("/products/:id", middleware.AuditTrail(db, "product.update", "product"), productHandler.Update)
			admin.DELETE("/products/:id", middleware.AuditTrail(db, "product.delete", "product"), productHandler.Delete)
			admin.POST("/products/:id/image", middleware.AuditTrail(db, "product.image", "product"), productHandler.UploadImage)

			admin.GET("/orders", orderHandler.AdminList)
			admin.PUT("/orders/:id/advance", middleware.AuditTrail(db, "order.advance", "order"), orderHandler.AdvanceStatus)

			admin.PUT("/settings", middleware.AuditTrail(db, "settings.update", "settings"), settingsHandler.Update)
			admin.POST("/settings/qr", middleware.AuditTrail(db, "settings.qr_upload", "settings"), settingsHandler.UploadQRCode)
		}
	}

	return r, nil
}
