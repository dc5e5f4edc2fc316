package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/rakeshrg123/Mechine-test/controllers/product"
	"github.com/rakeshrg123/Mechine-test/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers /api/product/*. Reads are public; catalog
// mutations and the export need an admin token.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productGroup := api.Group("/product")
	{
		// ──────────────── Browse (public) ────────────────
		productGroup.GET("/products", productcontroller.GetProducts(db))
		productGroup.GET("/filter", productcontroller.FilterProducts(db))
		productGroup.GET("/:productId", productcontroller.GetProductByID(db))
		productGroup.GET("/:productId/variants", productcontroller.GetVariants(db))

		// ──────────────── Catalog management (admin) ────────────────
		adminGroup := productGroup.Group("")
		adminGroup.Use(middleware.ValidateToken, middleware.RequireRoles("admin"))
		{
			adminGroup.POST("/create", productcontroller.CreateProduct(db))
			adminGroup.PUT("/update/:id", productcontroller.UpdateProduct(db))
			adminGroup.DELETE("/delete/:id", productcontroller.DeleteProduct(db))
			adminGroup.POST("/:productId/variants", productcontroller.CreateVariant(db))
			adminGroup.PUT("/:productId/variants/:variantId", productcontroller.UpdateVariant(db))
			adminGroup.DELETE("/:productId/variants/:variantId", productcontroller.DeleteVariant(db))
			adminGroup.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
