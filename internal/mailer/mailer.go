package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agencyx/internal/models"

	"github.com/resend/resend-go/v2"
)

// Sender envía el correo de bienvenida cuando un admin aprueba una cuenta.
type Sender interface {
	SendWelcome(ctx context.Context, user models.User) error
}

const (
	fromAddress = "AgencyX App <notifications@maenstudiosx.space>"
	loginURL    = "maenstudiosx.space/authentication/login"
)

type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) SendWelcome(ctx context.Context, user models.User) error {
	fullName := user.FullName
	if strings.TrimSpace(fullName) == "" {
		fullName = "Compañero"
	}
	firstName := strings.Fields(fullName)[0]

	sector := user.Sector
	if sector == "" {
		sector = "tu sector"
	}

	text := fmt.Sprintf("Hola %s, bienvenido a Maen Studios.\nTu sector: %s.\nAccede aquí: %s",
		fullName, sector, loginURL)

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    fromAddress,
		To:      []string{user.Email},
		Subject: fmt.Sprintf("🎉 ¡Bienvenido a Maen Studios, %s!", firstName),
		Text:    text,
	})
	return err
}

// Disabled se usa cuando no hay API key de Resend configurada.
type Disabled struct{}

func (Disabled) SendWelcome(_ context.Context, user models.User) error {
	log.Printf("mailer disabled, skipping welcome email for %s", user.Email)
	return nil
}
