package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Allowed reports whether an identity holding role may perform an action
// restricted to the required roles. It is a pure function so privilege rules
// can be checked independently of the transport layer.
func Allowed(role string, required ...string) bool {
	if role == "" {
		return false
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRoles is the gin adapter over Allowed. ValidateToken must run first
// so the role claim is in the context.
func RequireRoles(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		roleStr, _ := role.(string)
		if !Allowed(roleStr, required...) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied, insufficient role."})
			c.Abort()
			return
		}
		c.Next()
	}
}
