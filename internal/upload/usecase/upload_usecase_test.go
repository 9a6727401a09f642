package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
)

const testMaxBytes = 5 * 1024 * 1024

type mockBlobStore struct {
	putFn        func(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	deleteFn     func(ctx context.Context, key string) error
	keyFromURLFn func(url string) (string, bool)
	putKeys      []string
	deletedKeys  []string
}

func (m *mockBlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	m.putKeys = append(m.putKeys, key)
	if m.putFn != nil {
		return m.putFn(ctx, key, contentType, body, size)
	}
	return "https://cdn.revdev.mx/" + key, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	m.deletedKeys = append(m.deletedKeys, key)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockBlobStore) KeyFromURL(url string) (string, bool) {
	if m.keyFromURLFn != nil {
		return m.keyFromURLFn(url)
	}
	key, ok := strings.CutPrefix(url, "https://cdn.revdev.mx/")
	return key, ok
}

func TestUploadImage_RejectsDisallowedType(t *testing.T) {
	store := &mockBlobStore{}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.UploadImage(context.Background(), "doc.pdf", "application/pdf", 1024, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if result.Success {
		t.Error("expected rejection of non-image type")
	}
	if len(store.putKeys) != 0 {
		t.Error("store must not be touched for rejected types")
	}
}

func TestUploadImage_RejectsOversize(t *testing.T) {
	store := &mockBlobStore{}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.UploadImage(context.Background(), "big.png", "image/png", testMaxBytes+1, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if result.Success {
		t.Error("expected rejection of oversize file")
	}
	if result.Message != "El archivo es demasiado grande. Máximo 5MB permitido" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestUploadImage_AtLimitAccepted(t *testing.T) {
	store := &mockBlobStore{}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.UploadImage(context.Background(), "ok.png", "image/png", testMaxBytes, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success at the exact limit: %s", result.Message)
	}
}

func TestUploadImage_KeyShape(t *testing.T) {
	store := &mockBlobStore{}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.UploadImage(context.Background(), "Foto Final.PNG", "image/png", 1024, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success: %s", result.Message)
	}

	key := store.putKeys[0]
	if !strings.HasPrefix(key, "projects/") {
		t.Errorf("key should live under projects/, got %s", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("extension should be lowercased from the filename, got %s", key)
	}
	if strings.Contains(key, " ") {
		t.Errorf("key must not carry the original filename, got %s", key)
	}
}

func TestUploadImage_NoStoreConfigured(t *testing.T) {
	uc := NewUploadUsecase(nil, testMaxBytes)

	result, err := uc.UploadImage(context.Background(), "a.png", "image/png", 1024, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if result.Success {
		t.Error("expected failure without a configured store")
	}
	if result.Message != "Almacenamiento de imágenes no configurado" {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestDeleteImage_ExternalURLNoOp(t *testing.T) {
	store := &mockBlobStore{}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.DeleteImage(context.Background(), "https://otrositio.mx/foto.png")
	if err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if !result.Success {
		t.Fatalf("external deletes resolve as success: %s", result.Message)
	}
	if result.Message != "Imagen externa, no eliminada del storage" {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if len(store.deletedKeys) != 0 {
		t.Error("store must not be touched for external URLs")
	}
}

func TestDeleteImage_OwnedKey(t *testing.T) {
	store := &mockBlobStore{}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.DeleteImage(context.Background(), "https://cdn.revdev.mx/projects/123-abc.png")
	if err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success: %s", result.Message)
	}
	if len(store.deletedKeys) != 1 || store.deletedKeys[0] != "projects/123-abc.png" {
		t.Errorf("unexpected deletions: %v", store.deletedKeys)
	}
}

func TestDeleteImage_NonProjectKeyTreatedAsExternal(t *testing.T) {
	store := &mockBlobStore{
		keyFromURLFn: func(url string) (string, bool) {
			return "external/projects/x.png", true
		},
	}
	uc := NewUploadUsecase(store, testMaxBytes)

	result, err := uc.DeleteImage(context.Background(), "https://cdn.revdev.mx/external/projects/x.png")
	if err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if result.Message != "Imagen externa, no eliminada del storage" {
		t.Errorf("keys outside projects/ must be left alone, got: %s", result.Message)
	}
	if len(store.deletedKeys) != 0 {
		t.Errorf("unexpected deletions: %v", store.deletedKeys)
	}
}

func TestDeleteImage_EmptyURL(t *testing.T) {
	uc := NewUploadUsecase(&mockBlobStore{}, testMaxBytes)

	result, err := uc.DeleteImage(context.Background(), "")
	if err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if result.Success {
		t.Error("expected failure for empty url")
	}
}
