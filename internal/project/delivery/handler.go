package delivery

import (
	"net/http"

	authdelivery "revdev-backend/internal/auth/delivery"
	projectdto "revdev-backend/internal/project/dto"
	"revdev-backend/internal/project/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project CRUD requests. Business-rule failures are
// delivered as {success:false, message} with status 200, mirroring the
// structured results the dashboard inspects.
type ProjectHandler struct {
	projectUsecase usecase.ProjectUsecase
}

func NewProjectHandler(projectUsecase usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// List returns all projects, ordered by year then creation time.
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	result, err := h.projectUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al obtener los proyectos",
			"data":    []interface{}{},
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByID returns a single project.
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	result, err := h.projectUsecase.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al obtener el proyecto",
		})
		return
	}
	if !result.Success {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create inserts a new project for the acting admin.
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectdto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Datos del proyecto inválidos",
		})
		return
	}

	result, err := h.projectUsecase.Create(authdelivery.IdentityFromContext(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al crear el proyecto",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Update replaces the full mutable attribute set of a project.
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectdto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Datos del proyecto inválidos",
		})
		return
	}

	result, err := h.projectUsecase.Update(authdelivery.IdentityFromContext(c), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al actualizar el proyecto",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete removes a project outright.
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	result, err := h.projectUsecase.Delete(authdelivery.IdentityFromContext(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error inesperado al eliminar el proyecto",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
