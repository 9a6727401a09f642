package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdto "revdev-backend/internal/auth/dto"
	"revdev-backend/internal/auth/usecase"
	"revdev-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func newTestUsecase() usecase.AuthUsecase {
	return usecase.NewAuthUsecase(nil, &config.Config{
		JWTSecret:     "test-secret",
		SessionExpiry: time.Hour,
		AdminEmail:    "contacto@revdev.mx",
	})
}

func newTestRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		identity := IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email, "role": identity.Role})
	})
	return r
}

func demoToken(t *testing.T, uc usecase.AuthUsecase) string {
	t.Helper()
	result, err := uc.SignIn(&authdto.SignInRequest{
		Email:    "contacto@revdev.mx",
		Password: "admin123",
	})
	if err != nil || !result.Success {
		t.Fatalf("demo sign in failed: %v %+v", err, result)
	}
	return result.Token
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newTestRouter(newTestUsecase())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newTestRouter(newTestUsecase())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: "garbage"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	uc := newTestUsecase()
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: demoToken(t, uc)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "contacto@revdev.mx") || !strings.Contains(body, "admin") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	uc := newTestUsecase()
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+demoToken(t, uc))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// The auth-user cookie is display data only. Presenting it without a valid
// token must not authenticate the request.
func TestAuthMiddleware_UserCookieAloneRejected(t *testing.T) {
	r := newTestRouter(newTestUsecase())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  "auth-user",
		Value: `{"id":"demo-admin","email":"contacto@revdev.mx","role":"admin"}`,
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
