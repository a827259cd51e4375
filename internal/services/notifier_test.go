package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"go.uber.org/zap"
)

func TestNotificationTemplates(t *testing.T) {
	influencer := &models.Influencer{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		DisplayName: "Jamie Doe",
		Handle:      "jamiedoe",
	}
	campaign := &models.Campaign{
		ID:    uuid.New(),
		Title: "Summer Launch",
	}
	recipient := uuid.New()

	tests := []struct {
		name        string
		fire        func(n *Notifier)
		wantType    string
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "new application",
			fire:        func(n *Notifier) { n.NewApplication(context.Background(), recipient, influencer, campaign) },
			wantType:    models.NotificationTypeNewApplication,
			wantTitle:   "New applicant",
			wantMessage: `Jamie Doe (@jamiedoe) applied to "Summer Launch"`,
		},
		{
			name:        "approved",
			fire:        func(n *Notifier) { n.ApplicationApproved(context.Background(), recipient, campaign) },
			wantType:    models.NotificationTypeApplicationApproved,
			wantTitle:   "Application approved",
			wantMessage: `"Summer Launch" application was approved. Await advertiser contact.`,
		},
		{
			name:        "rejected",
			fire:        func(n *Notifier) { n.ApplicationRejected(context.Background(), recipient, campaign) },
			wantType:    models.NotificationTypeApplicationRejected,
			wantTitle:   "Application result",
			wantMessage: `"Summer Launch" application was rejected.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeNotifications{}
			tt.fire(NewNotifier(store, nil, zap.NewNop()))

			if len(store.created) != 1 {
				t.Fatalf("notifications = %d, want 1", len(store.created))
			}
			n := store.created[0]
			if n.UserID != recipient {
				t.Errorf("recipient = %s, want %s", n.UserID, recipient)
			}
			if n.Type != tt.wantType {
				t.Errorf("type = %q, want %q", n.Type, tt.wantType)
			}
			if n.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", n.Title, tt.wantTitle)
			}
			if n.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", n.Message, tt.wantMessage)
			}
			if n.RelatedID == nil || *n.RelatedID != campaign.ID {
				t.Errorf("related_id = %v, want campaign id %s", n.RelatedID, campaign.ID)
			}
		})
	}
}
