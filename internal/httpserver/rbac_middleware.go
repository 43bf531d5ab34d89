package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relotrack/pkg/rbac"
)

// RequirePermission requires the authenticated role to hold the permission.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid role"})
			c.Abort()
			return
		}

		if err := rbac.CheckPermission(role, permission); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}
