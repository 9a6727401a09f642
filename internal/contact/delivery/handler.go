package delivery

import (
	"net/http"

	contactdto "revdev-backend/internal/contact/dto"
	"revdev-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// Send forwards a quotation request to the agency inbox.
// POST /api/contact
func (h *ContactHandler) Send(c *gin.Context) {
	var req contactdto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Por favor completa todos los campos requeridos.",
		})
		return
	}

	result, err := h.contactUsecase.SendContactEmail(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al enviar el mensaje",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
