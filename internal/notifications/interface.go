package notifications

import "github.com/newsguard/newsguard/internal/models"

// NotificationInterface defines the contract for outbound mail
type NotificationInterface interface {
	SendContactMessage(msg *models.ContactMessage) error
}
