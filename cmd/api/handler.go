package api

import (
	authdelivery "revdev-backend/internal/auth/delivery"
	authusecase "revdev-backend/internal/auth/usecase"
	chatdelivery "revdev-backend/internal/chat/delivery"
	chatusecase "revdev-backend/internal/chat/usecase"
	contactdelivery "revdev-backend/internal/contact/delivery"
	contactusecase "revdev-backend/internal/contact/usecase"
	"revdev-backend/internal/middleware"
	projectdelivery "revdev-backend/internal/project/delivery"
	projectusecase "revdev-backend/internal/project/usecase"
	uploaddelivery "revdev-backend/internal/upload/delivery"
	uploadusecase "revdev-backend/internal/upload/usecase"
	usersdelivery "revdev-backend/internal/users/delivery"
	usersusecase "revdev-backend/internal/users/usecase"
	"revdev-backend/pkg/config"
	"revdev-backend/pkg/metrics"
	"revdev-backend/pkg/sse"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type Handler struct {
	config      *config.Config
	authUsecase authusecase.AuthUsecase

	authHandler    *authdelivery.AuthHandler
	projectHandler *projectdelivery.ProjectHandler
	userHandler    *usersdelivery.UserHandler
	contactHandler *contactdelivery.ContactHandler
	chatHandler    *chatdelivery.ChatHandler
	uploadHandler  *uploaddelivery.UploadHandler

	publicLimiter *middleware.RateLimiter
}

func NewHandler(
	cfg *config.Config,
	authUc authusecase.AuthUsecase,
	projectUc projectusecase.ProjectUsecase,
	userUc usersusecase.UserUsecase,
	contactUc contactusecase.ContactUsecase,
	chatUc chatusecase.ChatUsecase,
	uploadUc uploadusecase.UploadUsecase,
	sseManager *sse.Manager,
) *Handler {
	return &Handler{
		config:         cfg,
		authUsecase:    authUc,
		authHandler:    authdelivery.NewAuthHandler(authUc, sseManager),
		projectHandler: projectdelivery.NewProjectHandler(projectUc),
		userHandler:    usersdelivery.NewUserHandler(userUc),
		contactHandler: contactdelivery.NewContactHandler(contactUc),
		chatHandler:    chatdelivery.NewChatHandler(chatUc),
		uploadHandler:  uploaddelivery.NewUploadHandler(uploadUc),
		// 10 req/min with a small burst is plenty for humans filling a
		// form or chatting
		publicLimiter: middleware.NewRateLimiter(rate.Limit(10.0/60.0), 5),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.Use(metrics.Middleware())

	SetupRoutes(r, h)

	return r.Run(addr)
}
