package delivery

import (
	"encoding/json"
	"net/http"

	authdomain "revdev-backend/internal/auth/domain"
	authdto "revdev-backend/internal/auth/dto"
	"revdev-backend/internal/auth/usecase"
	"revdev-backend/pkg/sse"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	sseManager  *sse.Manager
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, sseManager *sse.Manager) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sseManager:  sseManager,
	}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req authdto.SignInRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email y contraseña son requeridos",
		})
		return
	}

	result, err := h.authUsecase.SignIn(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al iniciar sesión",
		})
		return
	}

	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	h.setSessionCookies(c, result.User, result.Token)
	h.sseManager.Publish(result.User.ID, sse.Event{Type: "signed_in", Data: result.User})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  result.Message,
		"user":     result.User,
		"redirect": "/dashboard",
	})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req authdto.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email y contraseña son requeridos",
		})
		return
	}

	result, err := h.authUsecase.SignUp(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al crear la cuenta",
		})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

// SignOut clears the session cookies. The route is reachable without a
// valid session; a verifiable token only adds the change notification.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		if identity, err := h.authUsecase.ValidateToken(token); err == nil {
			h.sseManager.Publish(identity.ID, sse.Event{Type: "signed_out"})
		}
	}

	h.clearSessionCookies(c)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"redirect": "/",
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity := IdentityFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    identity,
	})
}

// Events streams session change notifications so the client does not have
// to re-poll cookies on an interval.
func (h *AuthHandler) Events(c *gin.Context) {
	identity := IdentityFromContext(c)
	h.sseManager.ServeHTTP(c, identity.ID)
}

// setSessionCookies mirrors the identity into the auth-user/auth-token
// cookie pair. Both are readable by the browser UI; authorization only ever
// trusts the signed token.
func (h *AuthHandler) setSessionCookies(c *gin.Context, identity *authdomain.Identity, token string) {
	maxAge := h.authUsecase.SessionExpirySeconds()
	secure := gin.Mode() == gin.ReleaseMode

	userJSON, _ := json.Marshal(identity)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth-user", string(userJSON), maxAge, "/", "", secure, false)
	c.SetCookie("auth-token", token, maxAge, "/", "", secure, false)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	secure := gin.Mode() == gin.ReleaseMode

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth-user", "", -1, "/", "", secure, false)
	c.SetCookie("auth-token", "", -1, "/", "", secure, false)
}
