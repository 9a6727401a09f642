package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// BlobStore is the image storage backend.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}

type UploadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadUsecase validates and stores project images.
type UploadUsecase interface {
	UploadImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*UploadResult, error)
	DeleteImage(ctx context.Context, url string) (*UploadResult, error)
}

type uploadUsecase struct {
	store    BlobStore
	maxBytes int64
}

// NewUploadUsecase creates a new uploadUsecase. store may be nil when blob
// storage is unconfigured.
func NewUploadUsecase(store BlobStore, maxBytes int64) UploadUsecase {
	return &uploadUsecase{
		store:    store,
		maxBytes: maxBytes,
	}
}

func (u *uploadUsecase) UploadImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*UploadResult, error) {
	if !allowedImageTypes[contentType] {
		return &UploadResult{
			Success: false,
			Message: "Tipo de archivo no permitido. Solo se permiten imágenes (JPG, PNG, WebP, GIF)",
		}, nil
	}

	if size > u.maxBytes {
		return &UploadResult{
			Success: false,
			Message: "El archivo es demasiado grande. Máximo 5MB permitido",
		}, nil
	}

	if u.store == nil {
		return &UploadResult{
			Success: false,
			Message: "Almacenamiento de imágenes no configurado",
		}, nil
	}

	key := randomImageKey(filename)

	url, err := u.store.Put(ctx, key, contentType, body, size)
	if err != nil {
		log.Printf("[ERROR] uploadImage - storage error: %v", err)
		return &UploadResult{
			Success: false,
			Message: "Error al subir la imagen",
		}, nil
	}

	return &UploadResult{
		Success: true,
		Message: "Imagen subida exitosamente",
		URL:     url,
	}, nil
}

func (u *uploadUsecase) DeleteImage(ctx context.Context, url string) (*UploadResult, error) {
	if url == "" {
		return &UploadResult{
			Success: false,
			Message: "URL no proporcionada",
		}, nil
	}

	if u.store == nil {
		return &UploadResult{
			Success: false,
			Message: "Almacenamiento de imágenes no configurado",
		}, nil
	}

	key, ok := u.store.KeyFromURL(url)
	if !ok || !strings.HasPrefix(key, "projects/") {
		// External image, nothing to remove from our storage
		return &UploadResult{
			Success: true,
			Message: "Imagen externa, no eliminada del storage",
		}, nil
	}

	if err := u.store.Delete(ctx, key); err != nil {
		log.Printf("[ERROR] deleteImage - storage error: %v", err)
		return &UploadResult{
			Success: false,
			Message: "Error al eliminar la imagen",
		}, nil
	}

	return &UploadResult{
		Success: true,
		Message: "Imagen eliminada exitosamente",
	}, nil
}

func randomImageKey(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("projects/%d-%s.%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
