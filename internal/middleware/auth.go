package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserHashKey = "auth_user_hash"

	// CookieName is the session cookie set by the identify endpoints.
	CookieName = "user_hash"
)

// IdentifyMiddleware resolves the user_hash cookie into a known account.
// The hash is opaque and keyed server-side, so possession of a hash that
// exists in the users table is the whole session check.
func IdentifyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userHash, err := c.Cookie(CookieName)
		if err != nil || userHash == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_hash cookie is required"})
			return
		}

		var exists bool
		if err := db.Table("users").Select("1").Where("user_hash = ?", userHash).Scan(&exists).Error; err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set(AuthUserHashKey, userHash)
		c.Next()
	}
}

// RequireAdmin gates a route on the account's admin flag. Must run after
// IdentifyMiddleware.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userHash, err := GetUserHashFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not identified"})
			return
		}

		var admin bool
		if err := db.Table("users").Select("admin").Where("user_hash = ?", userHash).Scan(&admin).Error; err != nil || !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetUserHashFromContext extracts the identified user's hash from the context.
func GetUserHashFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get(AuthUserHashKey)
	if !exists {
		return "", errors.New("user hash not found in context")
	}

	userHash, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("user hash has unexpected type: %T", value)
	}
	return userHash, nil
}
