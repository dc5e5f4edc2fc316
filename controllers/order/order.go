package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakeshrg123/Mechine-test/models"
	"gorm.io/gorm"
)

// GET /api/order/orders — admin listing, newest first. Orders are append-only;
// nothing here mutates them.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
