package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rakeshrg123/Mechine-test/models"
	"gorm.io/gorm"
)

type CreateVariantInput struct {
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

type UpdateVariantInput struct {
	Color *string `json:"color"`
	Stock *int    `json:"stock"`
}

// POST /api/product/:productId/variants
func CreateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "productId")
		if !ok {
			return
		}

		var input CreateVariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		variant := models.Variant{
			ProductID: product.ID,
			Color:     strings.TrimSpace(input.Color),
			Stock:     input.Stock,
		}
		if errs := validateVariant(&variant); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": errs})
			return
		}

		if err := db.Create(&variant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating variant"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Variant created successfully", "variant": variant})
	}
}

// GET /api/product/:productId/variants
func GetVariants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "productId")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"variants": product.Variants})
	}
}

// PUT /api/product/:productId/variants/:variantId — partial merge, only the
// supplied fields overwrite.
func UpdateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "productId")
		if !ok {
			return
		}

		variantID, err := strconv.ParseUint(c.Param("variantId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid variant ID"})
			return
		}
		variant := product.VariantByID(uint(variantID))
		if variant == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Variant not found"})
			return
		}

		var input UpdateVariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if input.Color != nil {
			variant.Color = strings.TrimSpace(*input.Color)
		}
		if input.Stock != nil {
			variant.Stock = *input.Stock
		}
		if errs := validateVariant(variant); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": errs})
			return
		}

		if err := db.Save(variant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating variant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Variant updated successfully", "variant": variant})
	}
}

// DELETE /api/product/:productId/variants/:variantId — pull semantics:
// removing an id that is already absent is a success no-op.
func DeleteVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(db, c, "productId")
		if !ok {
			return
		}

		variantID, err := strconv.ParseUint(c.Param("variantId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid variant ID"})
			return
		}

		if err := db.Where("id = ? AND product_id = ?", uint(variantID), product.ID).
			Delete(&models.Variant{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting variant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Variant deleted successfully"})
	}
}

// validateVariant reuses the product message table for a standalone variant.
func validateVariant(v *models.Variant) models.ValidationErrors {
	errs := models.ValidationErrors{}
	if v.Color == "" {
		errs["color"] = "Color is required"
	}
	if v.Stock < 0 {
		errs["stock"] = "Stock quantity cannot be negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
