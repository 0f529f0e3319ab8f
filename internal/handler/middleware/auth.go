package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tickethub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware resolves the bearer token to a buyer. Identity is minted by
// the external identity provider; this service only verifies.
type AuthMiddleware struct {
	tokenValidator queries.TokenValidator
}

const ctxBuyerIDKey = "buyer_id"

func NewAuthMiddleware(tokenValidator queries.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		buyerID, err := m.tokenValidator.BuyerFromToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxBuyerIDKey, buyerID)
		c.Set("jwt_claims", map[string]any{
			"buyer_id": buyerID.String(),
		})
		c.Next()
	}
}

func GetBuyerID(c *gin.Context) (uuid.UUID, bool) {
	buyerID, exists := c.Get(ctxBuyerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := buyerID.(uuid.UUID)
	return id, ok
}
