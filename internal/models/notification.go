package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationTypeNewApplication      = "new_application"
	NotificationTypeApplicationApproved = "application_approved"
	NotificationTypeApplicationRejected = "application_rejected"
	NotificationTypeApplicationViewed   = "application_viewed"
	NotificationTypeNewMessage          = "new_message"
)

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	RelatedID *uuid.UUID `json:"related_id,omitempty"` // usually a campaign id, for deep links
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}
