package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rakeshrg123/Mechine-test/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VariantInput struct {
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

type CreateProductInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Variants    []VariantInput `json:"variants"`
}

type UpdateProductInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price"`
	Variants    []VariantInput `json:"variants"` // replaces the whole list when provided
}

// POST /api/product/create
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Variants:    toVariants(input.Variants),
		}
		product.Normalize()

		if errs := product.Validate(); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": errs})
			return
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
	}
}

// GET /api/product/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Variants").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /api/product/filter?name=prefix — case-insensitive name-prefix match.
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Variants")
		if name := c.Query("name"); name != "" {
			query = query.Where("LOWER(name) LIKE ?", strings.ToLower(name)+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /api/product/:productId
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "productId")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// PUT /api/product/update/:id — merges only provided fields, then re-validates
// the merged result.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "id")
		if !ok {
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		replaceVariants := input.Variants != nil
		oldVariantIDs := make([]uint, 0, len(product.Variants))
		for _, v := range product.Variants {
			oldVariantIDs = append(oldVariantIDs, v.ID)
		}
		if replaceVariants {
			product.Variants = toVariants(input.Variants)
		}
		product.Normalize()

		if errs := product.Validate(); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": errs})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if replaceVariants && len(oldVariantIDs) > 0 {
				if err := tx.Delete(&models.Variant{}, oldVariantIDs).Error; err != nil {
					return err
				}
			}
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}

// DELETE /api/product/delete/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "id")
		if !ok {
			return
		}

		if err := db.Select(clause.Associations).Delete(product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "product": product})
	}
}

// findProduct loads the product addressed by the named route param, with its
// variants, writing the 400/404 response itself when that fails.
func findProduct(db *gorm.DB, c *gin.Context, param string) (*models.Product, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return nil, false
	}

	var product models.Product
	if err := db.Preload("Variants").First(&product, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve product"})
		}
		return nil, false
	}
	return &product, true
}

func toVariants(inputs []VariantInput) []models.Variant {
	variants := make([]models.Variant, 0, len(inputs))
	for _, v := range inputs {
		variants = append(variants, models.Variant{Color: v.Color, Stock: v.Stock})
	}
	return variants
}
