package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockChatService struct {
	generateReplyFn func(ctx context.Context, systemPrompt, message string) (string, error)
}

func (m *mockChatService) GenerateReply(ctx context.Context, systemPrompt, message string) (string, error) {
	return m.generateReplyFn(ctx, systemPrompt, message)
}

func TestSendMessage_Success(t *testing.T) {
	var gotPrompt string
	chat := &mockChatService{
		generateReplyFn: func(ctx context.Context, systemPrompt, message string) (string, error) {
			gotPrompt = systemPrompt
			return "¡Hola! Ofrecemos desarrollo web profesional. 😊", nil
		},
	}
	uc := NewChatUsecase(chat)

	reply := uc.SendMessage(context.Background(), "¿Qué servicios ofrecen?")
	if !reply.Success {
		t.Fatalf("expected success, got %+v", reply)
	}
	if !strings.Contains(reply.Message, "desarrollo web") {
		t.Errorf("unexpected reply: %s", reply.Message)
	}
	if !strings.Contains(gotPrompt, "RevDev Solutions México") {
		t.Error("company profile should be injected as the system prompt")
	}
}

func TestSendMessage_ProviderErrorFallsBack(t *testing.T) {
	chat := &mockChatService{
		generateReplyFn: func(ctx context.Context, systemPrompt, message string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	uc := NewChatUsecase(chat)

	reply := uc.SendMessage(context.Background(), "hola")
	if reply.Success {
		t.Error("expected fallback on provider error")
	}
	if reply.Message != fallbackMessage {
		t.Errorf("unexpected fallback: %s", reply.Message)
	}
}

func TestSendMessage_NoProviderConfigured(t *testing.T) {
	uc := NewChatUsecase(nil)

	reply := uc.SendMessage(context.Background(), "hola")
	if reply.Success {
		t.Error("expected fallback without a provider")
	}
	if !strings.Contains(reply.Message, "contacto@revdev.mx") {
		t.Errorf("fallback should point at the contact address: %s", reply.Message)
	}
}
