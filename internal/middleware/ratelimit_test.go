package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/contact", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 3)
	defer rl.Stop()
	r := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d within burst: expected 200, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past burst, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	defer rl.Stop()
	r := newLimitedRouter(rl)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(first, req)

	exhausted := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(exhausted, req)

	other := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(other, req)

	if first.Code != http.StatusOK || exhausted.Code != http.StatusTooManyRequests {
		t.Errorf("first IP: expected 200 then 429, got %d then %d", first.Code, exhausted.Code)
	}
	if other.Code != http.StatusOK {
		t.Errorf("second IP should have its own bucket, got %d", other.Code)
	}
}

func TestRateLimiter_CleanupEvictsIdle(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	defer rl.Stop()

	rl.allow("10.0.0.1")
	rl.mu.Lock()
	rl.limiters["10.0.0.1"].lastAccess = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.cleanup(10 * time.Minute)

	rl.mu.Lock()
	_, exists := rl.limiters["10.0.0.1"]
	rl.mu.Unlock()
	if exists {
		t.Error("idle entry should have been evicted")
	}
}
