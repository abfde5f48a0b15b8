// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/srinivasroopa42-commits/royal-cart/internal/config"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

var DB *gorm.DB

func Initialize(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if !cfg.Server.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db
	logrus.Info("Database connection established")
	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.StoreSettings{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// SeedInitialData inserts the category tree, a small starter catalog,
// the store settings row and the admin account. Every insert is
// idempotent so the seeder can run on every boot.
func SeedInitialData(db *gorm.DB, cfg *config.Config) error {
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Slug: "fruits-veg", Name: "Fruits & Veg", Icon: "🥦", Color: "bg-green-100"},
		{Slug: "dairy", Name: "Dairy, Bread & Eggs", Icon: "🥛", Color: "bg-blue-100"},
		{Slug: "staples", Name: "Rice, Atta, Oil & Dals", Icon: "🌾", Color: "bg-yellow-100"},
		{Slug: "spices", Name: "Masala & Dry Fruits", Icon: "🌶️", Color: "bg-red-100"},
		{Slug: "snacks", Name: "Snacks", Icon: "🍿", Color: "bg-orange-100"},
		{Slug: "packaged", Name: "Packed Food", Icon: "🥫", Color: "bg-amber-100"},
		{Slug: "beverages", Name: "Beverages", Icon: "🥤", Color: "bg-purple-100"},
		{Slug: "tea-coffee", Name: "Tea & Coffee", Icon: "☕", Color: "bg-stone-100"},
		{Slug: "household", Name: "Household Essentials", Icon: "🧺", Color: "bg-cyan-100"},
		{Slug: "personal-care", Name: "Bath & Body", Icon: "🧴", Color: "bg-rose-100"},
		{Slug: "kitchen", Name: "Kitchen & Dining", Icon: "🍳", Color: "bg-gray-200"},
	}

	for _, category := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", category.Slug, err)
			}
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	orig := func(v float64) *float64 { return &v }
	products := []models.Product{
		{
			Name:          "Fresh Cavendish Bananas",
			Price:         45,
			OriginalPrice: orig(60),
			ImageURL:      "https://images.unsplash.com/photo-1571771894821-ad99026107b8?auto=format&fit=crop&q=80&w=200",
			CategoryID:    "fruits-veg",
			Weight:        "500g",
			Description:   "Fresh and ripe yellow bananas.",
			Tags:          pq.StringArray{"banana", "fruit", "fresh"},
			Rating:        4.8,
			SalesCount:    1200,
			StockCount:    50,
		},
		{
			Name:          "Amul Taaza Toned Milk",
			Price:         27,
			OriginalPrice: orig(28),
			ImageURL:      "https://images.unsplash.com/photo-1550583724-125581cc255b?auto=format&fit=crop&q=80&w=200",
			CategoryID:    "dairy",
			Weight:        "500ml",
			Description:   "Fresh toned milk from Amul.",
			Tags:          pq.StringArray{"milk", "dairy", "amul"},
			Rating:        4.9,
			SalesCount:    5000,
			StockCount:    0,
		},
		{
			Name:          "Lays Magic Masala Chips",
			Price:         20,
			OriginalPrice: orig(20),
			ImageURL:      "https://images.unsplash.com/photo-1566478989037-eec170784d0b?auto=format&fit=crop&q=80&w=200",
			CategoryID:    "snacks",
			Weight:        "40g",
			Description:   "India's favorite spicy potato chips.",
			Tags:          pq.StringArray{"chips", "snacks", "lays", "potato"},
			Rating:        4.5,
			SalesCount:    3200,
			StockCount:    100,
		},
		{
			Name:          "Red Onions",
			Price:         35,
			OriginalPrice: orig(50),
			ImageURL:      "https://images.unsplash.com/photo-1508747703725-719777637510?auto=format&fit=crop&q=80&w=200",
			CategoryID:    "fruits-veg",
			Weight:        "1kg",
			Description:   "Fresh quality red onions.",
			Tags:          pq.StringArray{"onion", "vegetable", "staple"},
			Rating:        4.7,
			SalesCount:    2500,
			StockCount:    75,
		},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
	}
	logrus.Info("Seeded starter catalog")
	return nil
}

func seedSettings(db *gorm.DB) error {
	var existing models.StoreSettings
	if err := db.First(&existing).Error; err == gorm.ErrRecordNotFound {
		settings := models.StoreSettings{StoreName: "RoyalCart"}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed store settings: %w", err)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Store.AdminPhone == "" || cfg.Store.AdminPassword == "" {
		logrus.Warn("Admin credentials not configured, skipping admin seed")
		return nil
	}

	var existing models.User
	if err := db.Where("phone = ?", cfg.Store.AdminPhone).First(&existing).Error; err != gorm.ErrRecordNotFound {
		return nil
	}

	admin := models.User{
		Name:  "Store Admin",
		Phone: cfg.Store.AdminPhone,
		Role:  models.RoleAdmin,
	}
	if err := admin.SetPassword(cfg.Store.AdminPassword); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	logrus.WithField("phone", cfg.Store.AdminPhone).Info("Seeded admin account")
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
