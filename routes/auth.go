package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/rakeshrg123/Mechine-test/controllers/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
	}
}
