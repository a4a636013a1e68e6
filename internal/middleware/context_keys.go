package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated staff user's ID.
// roleKey carries their role. Using a custom type prevents collisions.
const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated staff user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetRoleFromContext retrieves the authenticated staff user's role from the
// Gin context.
func GetRoleFromContext(c *gin.Context) (domain.StaffRole, bool) {
	roleVal := c.Request.Context().Value(roleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(domain.StaffRole)
	if !ok {
		return "", false
	}
	return role, true
}
