package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/rakeshrg123/Mechine-test/controllers/cart"
	"github.com/rakeshrg123/Mechine-test/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers /api/cart/*. Every cart operation needs a valid
// token; any authenticated identity may operate on its own userId — there is
// no role gate here.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.POST("/addtocart", cartControllers.AddToCartHandler(db))
		cartGroup.GET("/count/:userId", cartControllers.GetCartCountHandler(db))
		cartGroup.PUT("/cart/:userId", cartControllers.UpdateCartItemHandler(db))
		cartGroup.DELETE("/cart/:userId", cartControllers.ClearCartHandler(db))
		cartGroup.GET("/:userId", cartControllers.GetCartHandler(db))
		cartGroup.POST("/checkout/:userId", cartControllers.CheckoutHandler(db))
		cartGroup.DELETE("/removefromcart/:userId", cartControllers.RemoveFromCartHandler(db))
	}
}
