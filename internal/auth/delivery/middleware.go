package delivery

import (
	"net/http"
	"strings"

	authdomain "revdev-backend/internal/auth/domain"
	"revdev-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware resolves the session from the auth-token cookie, falling
// back to an Authorization Bearer header. Any read or verification failure
// resolves to unauthenticated, never to a stale identity.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No se encontró información de autenticación",
			})
			c.Abort()
			return
		}

		identity, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Sesión inválida o expirada",
			})
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set("userID", identity.ID)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie("auth-token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// IdentityFromContext returns the identity set by AuthMiddleware, or nil.
func IdentityFromContext(c *gin.Context) *authdomain.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*authdomain.Identity)
	if !ok {
		return nil
	}
	return identity
}
