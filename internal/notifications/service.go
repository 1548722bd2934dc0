package notifications

import (
	"fmt"

	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Service sends contact form submissions to the configured recipient via SMTP
type Service struct {
	config *config.Config
}

// Ensure Service implements NotificationInterface
var _ NotificationInterface = (*Service)(nil)

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// Enabled reports whether a contact recipient is configured
func (s *Service) Enabled() bool {
	return s.config.ContactRecipient != ""
}

// SendContactMessage delivers one contact form submission by email
func (s *Service) SendContactMessage(msg *models.ContactMessage) error {
	if !s.Enabled() {
		return fmt.Errorf("contact recipient is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.ContactRecipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", buildBody(msg))

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logrus.Infof("Sent contact form submission from %s to %s", msg.Email, s.config.ContactRecipient)
	return nil
}

func buildBody(msg *models.ContactMessage) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nSubject:%s\n\nMessage: %s",
		msg.Name, msg.Email, msg.Subject, msg.Message)
}
