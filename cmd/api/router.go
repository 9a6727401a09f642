package api

import (
	"net/http"

	"revdev-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireSession := delivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signin", h.authHandler.SignIn)
			auth.POST("/signup", h.authHandler.SignUp)
			auth.POST("/signout", h.authHandler.SignOut)
			auth.GET("/me", requireSession, h.authHandler.Me)
			auth.GET("/events", requireSession, h.authHandler.Events)
		}

		// Project routes (listing and detail are public)
		projects := api.Group("/projects")
		{
			projects.GET("", h.projectHandler.List)
			projects.GET("/:id", h.projectHandler.GetByID)
			projects.POST("", requireSession, h.projectHandler.Create)
			projects.PUT("/:id", requireSession, h.projectHandler.Update)
			projects.DELETE("/:id", requireSession, h.projectHandler.Delete)
		}

		// User administration routes (protected)
		users := api.Group("/users")
		users.Use(requireSession)
		{
			users.GET("", h.userHandler.List)
			users.GET("/stats", h.userHandler.Stats)
			users.PATCH("/:id/role", h.userHandler.UpdateRole)
			users.DELETE("/:id", h.userHandler.Delete)
		}

		// Public, rate limited
		api.POST("/contact", h.publicLimiter.Middleware(), h.contactHandler.Send)
		api.POST("/chat", h.publicLimiter.Middleware(), h.chatHandler.Send)

		// Image uploads (protected, the dashboard is the only caller)
		uploads := api.Group("/uploads")
		uploads.Use(requireSession)
		{
			uploads.POST("", h.uploadHandler.Upload)
			uploads.POST("/batch", h.uploadHandler.UploadMultiple)
			uploads.DELETE("", h.uploadHandler.Delete)
		}
	}
}
