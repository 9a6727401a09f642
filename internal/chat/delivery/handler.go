package delivery

import (
	"net/http"

	"revdev-backend/internal/chat/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send forwards one chat message to the assistant.
// POST /api/chat
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Mensaje requerido",
		})
		return
	}

	c.JSON(http.StatusOK, h.chatUsecase.SendMessage(c.Request.Context(), req.Message))
}
