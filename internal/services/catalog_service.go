// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/srinivasroopa42-commits/royal-cart/internal/catalog"
	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductInvalid   = errors.New("invalid product details")
)

type CatalogService struct {
	db *gorm.DB
}

type ProductInput struct {
	Name            string   `json:"name" validate:"required,min=3,max=255"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountPercent float64  `json:"discount_percent" validate:"gte=0,lt=100"`
	ImageURL        string   `json:"image_url"`
	CategoryID      string   `json:"category_id" validate:"required,category_slug"`
	Weight          string   `json:"weight" validate:"max=50"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Rating          float64  `json:"rating" validate:"gte=0,lte=5"`
	SalesCount      int64    `json:"sales_count" validate:"gte=0"`
	StockCount      int      `json:"stock_count" validate:"gte=0"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListProducts loads the live catalog and runs the storefront query over
// it. Filtering happens in memory so its semantics stay identical to the
// pure engine the tests exercise.
func (s *CatalogService) ListProducts(q catalog.Query) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Category").Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return catalog.Apply(products, q), nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// CreateProduct validates and inserts an admin-authored product. A
// non-zero discount percent back-computes the strike-through price so
// the listed price is what the customer pays.
func (s *CatalogService) CreateProduct(input *ProductInput) (*models.Product, error) {
	if err := s.checkCategory(input.CategoryID); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: originalPriceFor(input.Price, input.DiscountPercent),
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		Weight:        input.Weight,
		Description:   input.Description,
		Tags:          pq.StringArray(input.Tags),
		Rating:        input.Rating,
		SalesCount:    input.SalesCount,
		StockCount:    input.StockCount,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, input *ProductInput) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(input.CategoryID); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.OriginalPrice = originalPriceFor(input.Price, input.DiscountPercent)
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID
	product.Weight = input.Weight
	product.Description = input.Description
	product.Tags = pq.StringArray(input.Tags)
	product.Rating = input.Rating
	product.SalesCount = input.SalesCount
	product.StockCount = input.StockCount

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct soft-deletes the product and drops it from every active
// cart. Placed orders keep their snapshots.
func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to remove product from carts: %w", err)
		}
		return nil
	})
}

// SetImageURL attaches an uploaded image to an existing product.
func (s *CatalogService) SetImageURL(id uuid.UUID, url string) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(product).Update("image_url", url).Error; err != nil {
		return nil, fmt.Errorf("failed to attach product image: %w", err)
	}
	product.ImageURL = url
	return product, nil
}

func (s *CatalogService) checkCategory(slug string) error {
	var category models.Category
	if err := s.db.First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	return nil
}

// originalPriceFor derives the pre-discount price from the selling
// price: price / (1 - discount/100). Zero discount means no strike-through.
func originalPriceFor(price, discountPercent float64) *float64 {
	if discountPercent <= 0 {
		return nil
	}
	orig := price / (1 - discountPercent/100)
	return &orig
}
