package delivery

import (
	"fmt"
	"net/http"

	"revdev-backend/internal/upload/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
	}
}

// Upload stores a single project image.
// POST /api/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No se proporcionó ningún archivo",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al subir la imagen",
		})
		return
	}
	defer file.Close()

	result, err := h.uploadUsecase.UploadImage(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al subir la imagen",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadMultiple stores several images in one request, reporting per-file
// results.
// POST /api/uploads/batch
func (h *UploadHandler) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No se proporcionó ningún archivo",
		})
		return
	}

	files := form.File["files"]
	urls := []string{}
	uploadErrors := []string{}

	for _, fileHeader := range files {
		if fileHeader == nil || fileHeader.Size == 0 {
			continue
		}

		file, err := fileHeader.Open()
		if err != nil {
			uploadErrors = append(uploadErrors, fileHeader.Filename+": error al leer el archivo")
			continue
		}

		result, err := h.uploadUsecase.UploadImage(
			c.Request.Context(),
			fileHeader.Filename,
			fileHeader.Header.Get("Content-Type"),
			fileHeader.Size,
			file,
		)
		file.Close()

		if err != nil || !result.Success {
			message := "error desconocido"
			if result != nil {
				message = result.Message
			}
			uploadErrors = append(uploadErrors, fileHeader.Filename+": "+message)
			continue
		}
		urls = append(urls, result.URL)
	}

	message := fmt.Sprintf("%d imágenes subidas exitosamente", len(urls))
	if len(uploadErrors) > 0 {
		message = fmt.Sprintf("%s, %d errores", message, len(uploadErrors))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": len(urls) > 0,
		"message": message,
		"urls":    urls,
		"errors":  uploadErrors,
	})
}

// Delete removes a previously uploaded image by its public URL.
// DELETE /api/uploads?url=...
func (h *UploadHandler) Delete(c *gin.Context) {
	result, err := h.uploadUsecase.DeleteImage(c.Request.Context(), c.Query("url"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error al eliminar la imagen",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
