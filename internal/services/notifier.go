package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/events"
	"github.com/influencer-marketplace/backend/internal/models"
	"go.uber.org/zap"
)

// NotificationStore is the subset of the notification repository the
// notifier needs.
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ExistsForTarget(ctx context.Context, userID uuid.UUID, notificationType string, relatedID uuid.UUID) (bool, error)
}

// Notifier composes and persists notifications for domain events. Delivery is
// best-effort: persistence or publish failures are logged and never propagate
// to the primary operation.
type Notifier struct {
	store     NotificationStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewNotifier(store NotificationStore, publisher events.Publisher, log *zap.Logger) *Notifier {
	return &Notifier{store: store, publisher: publisher, log: log}
}

func (n *Notifier) NewApplication(ctx context.Context, brandUserID uuid.UUID, influencer *models.Influencer, campaign *models.Campaign) {
	n.dispatch(ctx, &models.Notification{
		UserID:    brandUserID,
		Type:      models.NotificationTypeNewApplication,
		Title:     "New applicant",
		Message:   fmt.Sprintf("%s (@%s) applied to %q", influencer.DisplayName, influencer.Handle, campaign.Title),
		RelatedID: &campaign.ID,
	})
}

func (n *Notifier) ApplicationApproved(ctx context.Context, influencerUserID uuid.UUID, campaign *models.Campaign) {
	n.dispatch(ctx, &models.Notification{
		UserID:    influencerUserID,
		Type:      models.NotificationTypeApplicationApproved,
		Title:     "Application approved",
		Message:   fmt.Sprintf("%q application was approved. Await advertiser contact.", campaign.Title),
		RelatedID: &campaign.ID,
	})
}

func (n *Notifier) ApplicationRejected(ctx context.Context, influencerUserID uuid.UUID, campaign *models.Campaign) {
	n.dispatch(ctx, &models.Notification{
		UserID:    influencerUserID,
		Type:      models.NotificationTypeApplicationRejected,
		Title:     "Application result",
		Message:   fmt.Sprintf("%q application was rejected.", campaign.Title),
		RelatedID: &campaign.ID,
	})
}

// ApplicationViewed fires at most once per application.
func (n *Notifier) ApplicationViewed(ctx context.Context, influencerUserID uuid.UUID, campaign *models.Campaign, applicationID uuid.UUID) {
	exists, err := n.store.ExistsForTarget(ctx, influencerUserID, models.NotificationTypeApplicationViewed, applicationID)
	if err != nil {
		n.log.Warn("notification dedup check failed", zap.Error(err))
		return
	}
	if exists {
		return
	}
	n.dispatch(ctx, &models.Notification{
		UserID:    influencerUserID,
		Type:      models.NotificationTypeApplicationViewed,
		Title:     "Application viewed",
		Message:   fmt.Sprintf("The advertiser viewed your application to %q.", campaign.Title),
		RelatedID: &applicationID,
	})
}

func (n *Notifier) NewMessage(ctx context.Context, recipientUserID, senderUserID uuid.UUID) {
	n.dispatch(ctx, &models.Notification{
		UserID:    recipientUserID,
		Type:      models.NotificationTypeNewMessage,
		Title:     "New message",
		Message:   "You received a new message.",
		RelatedID: &senderUserID,
	})
}

func (n *Notifier) dispatch(ctx context.Context, notification *models.Notification) {
	if err := n.store.Create(ctx, notification); err != nil {
		n.log.Warn("failed to persist notification",
			zap.String("type", notification.Type),
			zap.String("user_id", notification.UserID.String()),
			zap.Error(err),
		)
		return
	}

	if n.publisher == nil {
		return
	}
	_ = n.publisher.Publish(ctx, events.StreamNotifications, events.Event{
		Type: events.EventNotificationCreated,
		Payload: map[string]any{
			"notification_id": notification.ID.String(),
			"user_id":         notification.UserID.String(),
			"type":            notification.Type,
			"title":           notification.Title,
			"message":         notification.Message,
		},
	})
}
