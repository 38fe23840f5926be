//go:build unit

package api_test

import (
	"net/http"

	"hosteed/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testActorID = uuid.MustParse("6f1c2a44-0b4e-4d7e-9c55-1a2b3c4d5e6f")

// fakeAuth stands in for RequireAuth: any bearer header authenticates as testActorID with role.
func fakeAuth(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", testActorID)
		c.Set("user_role", role)
		c.Next()
	}
}
