package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
	"velora.backend/internal/config"
	"velora.backend/pkg/logger"
)

// Sender delivers transactional email
type Sender interface {
	SendResetCode(ctx context.Context, toName, toEmail, code string) error
}

// SendGridSender implements Sender through the SendGrid API
type SendGridSender struct {
	client     *sendgrid.Client
	senderName string
	senderMail string
}

// NewSendGridSender creates a SendGrid email sender
func NewSendGridSender(cfg config.SendGridConfig) *SendGridSender {
	return &SendGridSender{
		client:     sendgrid.NewSendClient(cfg.APIKey),
		senderName: cfg.SenderName,
		senderMail: cfg.SenderMail,
	}
}

// SendResetCode emails a password reset code to the user
func (s *SendGridSender) SendResetCode(ctx context.Context, toName, toEmail, code string) error {
	from := mail.NewEmail(s.senderName, s.senderMail)
	to := mail.NewEmail(toName, toEmail)
	subject := "Your password reset code"
	text := fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes. If you did not request this, ignore this email.", code)
	html := fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p><p>It expires in 10 minutes. If you did not request this, ignore this email.</p>", code)

	message := mail.NewSingleEmail(from, subject, to, text, html)
	response, err := s.client.Send(message)
	if err != nil {
		logger.Error(ctx, "failed to send reset code email", zap.String("to", toEmail), zap.Error(err))
		return err
	}
	if response.StatusCode >= 400 {
		logger.Error(ctx, "SendGrid rejected reset code email",
			zap.String("to", toEmail),
			zap.Int("status", response.StatusCode))
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	logger.Debug(ctx, "reset code email sent", zap.String("to", toEmail))
	return nil
}
