package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joblane/joblane-backend/internal/security"
)

// TokenCookieName is the cookie carrying the signed identity token.
const TokenCookieName = "token"

const contextUserIDKey = "userID"

type AuthMiddleware struct {
	tokens *security.TokenProvider
}

func NewAuthMiddleware(tokens *security.TokenProvider) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate reads the token cookie, verifies it and injects the caller's
// id into the request context. Absence or invalidity is a 401, never a crash.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "User not authenticated.",
				"success": false,
			})
			return
		}
		userID, err := m.tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token.",
				"success": false,
			})
			return
		}
		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id set by Authenticate.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
