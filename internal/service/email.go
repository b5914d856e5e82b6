package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sony/gobreaker"

	"rentease-backend/internal/logger"
)

// mailClient is satisfied by *sendgrid.Client.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client    mailClient
	breaker   *gobreaker.CircuitBreaker
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid backed EmailService, or a no-op one when
// apiKey is empty.
func NewEmailService(apiKey, fromEmail, fromName string, breaker *gobreaker.CircuitBreaker) EmailService {
	if apiKey == "" {
		logger.Info("SendGrid API key not set, email delivery disabled")
		return noopEmailService{}
	}
	return newEmailService(sendgrid.NewSendClient(apiKey), fromEmail, fromName, breaker)
}

func newEmailService(client mailClient, fromEmail, fromName string, breaker *gobreaker.CircuitBreaker) *emailService {
	return &emailService{
		client:    client,
		breaker:   breaker,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendNotificationEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	plain := fmt.Sprintf("Hello %s,\n\n%s\n\nBest regards,\nThe RentEase Team", toName, body)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	logger.ExternalServiceCall("SendGrid", "Send", "to", toEmail, "subject", subject)
	_, err := s.breaker.Execute(func() (interface{}, error) {
		response, err := s.client.SendWithContext(ctx, message)
		if err != nil {
			return nil, fmt.Errorf("failed to send email: %w", err)
		}
		if response.StatusCode >= 400 {
			return nil, fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		}
		return response, nil
	})
	logger.ExternalServiceResult("SendGrid", "Send", err, "to", toEmail)
	return err
}

type noopEmailService struct{}

func (noopEmailService) SendNotificationEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	logger.Debug("Email delivery disabled", "to", toEmail, "subject", subject)
	return nil
}
