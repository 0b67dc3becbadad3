package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-panel-server/models"
)

// Allowed is the single route-level authorization decision: an identity passes
// when its role is in the permitted set. An absent identity never passes.
func Allowed(role models.UserRole, allowed ...models.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func requireRoles(message string, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(CtxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}

		role, ok := value.(models.UserRole)
		if !ok || !Allowed(role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRoles("Admin access required", models.RoleAdmin)
}

func RequireAdminOrEditor() gin.HandlerFunc {
	return requireRoles("Admin or Editor access required", models.RoleAdmin, models.RoleEditor)
}

func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return requireRoles("Insufficient permissions", roles...)
}
