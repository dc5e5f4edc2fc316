package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/rakeshrg123/Mechine-test/controllers/order"
	"github.com/rakeshrg123/Mechine-test/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers /api/order/*. The listing is admin-only; the
// websocket feed does its own upgrade handshake.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orderGroup := api.Group("/order")
	{
		orderGroup.GET("/ws", orderControllers.OrderFeedHandler)
		orderGroup.GET("/orders",
			middleware.ValidateToken,
			middleware.RequireRoles("admin"),
			orderControllers.GetAllOrders(db))
	}
}
