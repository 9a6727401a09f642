package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	contactdto "revdev-backend/internal/contact/dto"
	"revdev-backend/pkg/config"
	"revdev-backend/pkg/email"
)

type mockMailer struct {
	sendFn func(ctx context.Context, msg *email.Message) error
	sent   []*email.Message
}

func (m *mockMailer) Send(ctx context.Context, msg *email.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFn != nil {
		return m.sendFn(ctx, msg)
	}
	return nil
}

func contactConfig() *config.Config {
	return &config.Config{
		ResendAPIKey:     "re_test",
		ContactFrom:      "RevDev Solutions <noreply@revdev.mx>",
		ContactRecipient: "contacto@revdev.mx",
	}
}

func validRequest() *contactdto.ContactRequest {
	return &contactdto.ContactRequest{
		Name:    "Juan Pérez",
		Company: "Tacos JP",
		Email:   "juan@tacosjp.mx",
		Message: "Quiero una cotización para mi sitio.",
	}
}

func TestSendContactEmail_MissingMessage(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewContactUsecase(mailer, contactConfig())

	req := validRequest()
	req.Message = ""
	result, err := uc.SendContactEmail(context.Background(), req)
	if err != nil {
		t.Fatalf("SendContactEmail: %v", err)
	}
	if result.Success {
		t.Error("expected validation failure")
	}
	if result.Message != "Por favor completa todos los campos requeridos." {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if len(mailer.sent) != 0 {
		t.Error("mailer must not be called on validation failure")
	}
}

func TestSendContactEmail_BadEmailShape(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewContactUsecase(mailer, contactConfig())

	for _, bad := range []string{"juan", "juan@", "juan@tacos", "ju an@tacos.mx", "@tacos.mx"} {
		req := validRequest()
		req.Email = bad
		result, err := uc.SendContactEmail(context.Background(), req)
		if err != nil {
			t.Fatalf("SendContactEmail(%q): %v", bad, err)
		}
		if result.Success {
			t.Errorf("expected rejection of %q", bad)
		}
	}
	if len(mailer.sent) != 0 {
		t.Error("mailer must not be called for malformed addresses")
	}
}

func TestSendContactEmail_MissingAPIKey(t *testing.T) {
	mailer := &mockMailer{}
	cfg := contactConfig()
	cfg.ResendAPIKey = ""
	uc := NewContactUsecase(mailer, cfg)

	result, err := uc.SendContactEmail(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SendContactEmail: %v", err)
	}
	if result.Success {
		t.Error("expected configuration failure")
	}
	if !strings.Contains(result.Message, "configuración del servidor") {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if len(mailer.sent) != 0 {
		t.Error("mailer must not be called without an API key")
	}
}

func TestSendContactEmail_Success(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewContactUsecase(mailer, contactConfig())

	result, err := uc.SendContactEmail(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SendContactEmail: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success: %s", result.Message)
	}
	if result.Message != "¡Mensaje enviado exitosamente! Te contactaremos pronto." {
		t.Errorf("unexpected message: %s", result.Message)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.ReplyTo != "juan@tacosjp.mx" {
		t.Errorf("reply-to should be the visitor address, got %s", msg.ReplyTo)
	}
	if !strings.Contains(msg.Subject, "Juan Pérez") {
		t.Errorf("subject should carry the visitor name: %s", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Tacos JP") || !strings.Contains(msg.Text, "Tacos JP") {
		t.Error("both bodies should carry the company name")
	}
}

func TestSendContactEmail_CompanyDefaults(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewContactUsecase(mailer, contactConfig())

	req := validRequest()
	req.Company = ""
	if _, err := uc.SendContactEmail(context.Background(), req); err != nil {
		t.Fatalf("SendContactEmail: %v", err)
	}
	if !strings.Contains(mailer.sent[0].Text, "No especificada") {
		t.Error("empty company should render as 'No especificada'")
	}
}

func TestSendContactEmail_MailerFailure(t *testing.T) {
	mailer := &mockMailer{
		sendFn: func(ctx context.Context, msg *email.Message) error {
			return errors.New("resend: 500")
		},
	}
	uc := NewContactUsecase(mailer, contactConfig())

	result, err := uc.SendContactEmail(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SendContactEmail: %v", err)
	}
	if result.Success {
		t.Error("expected failure when the mailer errors")
	}
	if result.Message != "Error al enviar el mensaje. Por favor intenta de nuevo." {
		t.Errorf("unexpected message: %s", result.Message)
	}
}
