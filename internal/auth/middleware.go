package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers
const (
	ContextKeyAgentID  = "agent_id"
	ContextKeyEmail    = "email"
	ContextKeyRoleName = "role_name"
)

// RequireAuth rejects requests without a valid Bearer token and stores the
// authenticated agent's identity in the request context.
func RequireAuth(authService *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := authService.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(ContextKeyAgentID, claims.AgentID.String())
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRoleName, claims.RoleName)
		c.Next()
	}
}
