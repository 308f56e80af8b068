package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaffOnly must run after AuthMiddleware. Non-staff callers are refused
// before the handler executes; no partial effect is possible.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != "staff" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_only"})
			return
		}
		c.Next()
	}
}
