// internal/handlers/product_handler.go
package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srinivasroopa42-commits/royal-cart/internal/catalog"
	"github.com/srinivasroopa42-commits/royal-cart/internal/services"
	"github.com/srinivasroopa42-commits/royal-cart/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
}

func NewProductHandler(catalogService *services.CatalogService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		storageService: storageService,
	}
}

// List serves the storefront grid: category, search, price bracket and
// sort all come in as query parameters with permissive defaults.
func (h *ProductHandler) List(c *gin.Context) {
	q := catalog.Query{
		Category: c.DefaultQuery("category", catalog.CategoryAll),
		Search:   c.Query("search"),
		Bracket:  catalog.PriceBracket(c.DefaultQuery("price", string(catalog.BracketAll))),
		Sort:     catalog.SortOption(c.DefaultQuery("sort", string(catalog.SortRelevance))),
	}

	products, err := h.catalogService.ListProducts(q)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load products")
		return
	}
	utils.SuccessResponse(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to load product")
		return
	}
	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load categories")
		return
	}
	utils.SuccessResponse(c, categories)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	product, err := h.catalogService.CreateProduct(&input)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.BadRequestResponse(c, "Unknown category", nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to create product")
		return
	}
	utils.CreatedResponse(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if errs := utils.ValidateStruct(&input); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	product, err := h.catalogService.UpdateProduct(id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product")
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.BadRequestResponse(c, "Unknown category", nil)
		default:
			utils.InternalErrorResponse(c, "Failed to update product")
		}
		return
	}
	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Product deleted"})
}

// UploadImage stores a product image and attaches its URL to the
// product in one step.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	file, header, err := openUpload(c, "image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, "products")
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	product, err := h.catalogService.SetImageURL(id, result.URL)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to attach image")
		return
	}
	utils.SuccessResponse(c, product)
}

func openUpload(c *gin.Context, field string) (multipart.File, *multipart.FileHeader, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}
