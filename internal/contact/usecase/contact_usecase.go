package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"

	contactdto "revdev-backend/internal/contact/dto"
	"revdev-backend/pkg/config"
	"revdev-backend/pkg/email"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Mailer forwards one message to the transactional email API.
type Mailer interface {
	Send(ctx context.Context, msg *email.Message) error
}

// ContactUsecase validates quotation requests and forwards them by email.
type ContactUsecase interface {
	SendContactEmail(ctx context.Context, req *contactdto.ContactRequest) (*contactdto.ContactResult, error)
}

type contactUsecase struct {
	mailer Mailer
	cfg    *config.Config
}

func NewContactUsecase(mailer Mailer, cfg *config.Config) ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
		cfg:    cfg,
	}
}

func (u *contactUsecase) SendContactEmail(ctx context.Context, req *contactdto.ContactRequest) (*contactdto.ContactResult, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return &contactdto.ContactResult{
			Success: false,
			Message: "Por favor completa todos los campos requeridos.",
		}, nil
	}

	if !emailShape.MatchString(req.Email) {
		return &contactdto.ContactResult{
			Success: false,
			Message: "Por favor ingresa un email válido.",
		}, nil
	}

	if u.cfg.ResendAPIKey == "" {
		log.Printf("[ERROR] RESEND_API_KEY not found in environment variables")
		return &contactdto.ContactResult{
			Success: false,
			Message: "Error de configuración del servidor. Por favor contacta al administrador.",
		}, nil
	}

	msg := &email.Message{
		From:    u.cfg.ContactFrom,
		To:      []string{u.cfg.ContactRecipient},
		ReplyTo: req.Email,
		Subject: "Nueva solicitud de cotización de " + req.Name,
		HTML:    buildContactHTML(req),
		Text:    buildContactText(req),
	}

	if err := u.mailer.Send(ctx, msg); err != nil {
		log.Printf("[ERROR] sendContactEmail - Resend error: %v", err)
		return &contactdto.ContactResult{
			Success: false,
			Message: "Error al enviar el mensaje. Por favor intenta de nuevo.",
		}, nil
	}

	return &contactdto.ContactResult{
		Success: true,
		Message: "¡Mensaje enviado exitosamente! Te contactaremos pronto.",
	}, nil
}

func buildContactHTML(req *contactdto.ContactRequest) string {
	company := req.Company
	if company == "" {
		company = "No especificada"
	}
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #fe6307;">Nueva Solicitud de Cotización</h1>
  <h2>Información del Cliente</h2>
  <table>
    <tr><td><strong>Nombre:</strong></td><td>%s</td></tr>
    <tr><td><strong>Empresa:</strong></td><td>%s</td></tr>
    <tr><td><strong>Email:</strong></td><td><a href="mailto:%s">%s</a></td></tr>
  </table>
  <h2>Mensaje</h2>
  <p style="white-space: pre-wrap;">%s</p>
  <p><strong>RevDev Solutions México</strong><br>Desarrollo Web Profesional en Guadalajara</p>
</div>`, req.Name, company, req.Email, req.Email, req.Message)
}

func buildContactText(req *contactdto.ContactRequest) string {
	company := req.Company
	if company == "" {
		company = "No especificada"
	}
	return fmt.Sprintf(`Nueva Solicitud de Cotización

Información del Cliente:
- Nombre: %s
- Empresa: %s
- Email: %s

Mensaje:
%s

---
RevDev Solutions México
Desarrollo Web Profesional en Guadalajara
`, req.Name, company, req.Email, req.Message)
}
