package middleware

import (
	"net/http"

	"learnhub/authz"

	"github.com/gin-gonic/gin"
)

// RequireRoles denies the request unless the authenticated caller's role
// appears in the allow-list. A missing role (no authenticated identity)
// is denied, never permitted: the check fails closed. On denial the
// chain is aborted so no handler logic runs.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		roleStr, _ := role.(string)
		if !authz.IsPermitted(roleStr, allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
