package delivery

import (
	"net/http"

	authdelivery "revdev-backend/internal/auth/delivery"
	usersdto "revdev-backend/internal/users/dto"
	"revdev-backend/internal/users/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler handles administrative user requests.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// List returns every user account.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.userUsecase.List(authdelivery.IdentityFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al obtener los usuarios",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Stats returns aggregate counts by role.
// GET /api/users/stats
func (h *UserHandler) Stats(c *gin.Context) {
	result, err := h.userUsecase.Stats(authdelivery.IdentityFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al obtener las estadísticas",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateRole changes the role of a user account.
// PATCH /api/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req usersdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID de usuario y rol son requeridos",
		})
		return
	}

	result, err := h.userUsecase.UpdateRole(authdelivery.IdentityFromContext(c), c.Param("id"), req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al actualizar el rol",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete removes a user account.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	result, err := h.userUsecase.Delete(authdelivery.IdentityFromContext(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al eliminar el usuario",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
