package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

// Store interfaces cover exactly what the lifecycle manager touches so tests
// can run it against in-memory fakes.

type ApplicationStore interface {
	Create(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error)
	ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.Application, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

type CampaignStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
}

type BrandStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error)
}

type InfluencerStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error)
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
}

// ApplicationService manages the campaign-application lifecycle: submission
// by influencers, accept/reject decisions by the owning brand, and the
// notification side effects of each transition.
type ApplicationService struct {
	applications ApplicationStore
	campaigns    CampaignStore
	brands       BrandStore
	influencers  InfluencerStore
	audit        AuditStore
	notifier     *Notifier
	log          *zap.Logger
}

func NewApplicationService(
	applications ApplicationStore,
	campaigns CampaignStore,
	brands BrandStore,
	influencers InfluencerStore,
	audit AuditStore,
	notifier *Notifier,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		campaigns:    campaigns,
		brands:       brands,
		influencers:  influencers,
		audit:        audit,
		notifier:     notifier,
		log:          log,
	}
}

// Submit creates a pending application from the acting user to a campaign and
// notifies the campaign owner. The unique (campaign, influencer) index in the
// store is what makes racing submissions safe; a duplicate-key failure is a
// domain outcome here, not an internal error.
func (s *ApplicationService) Submit(ctx context.Context, actorUserID, campaignID uuid.UUID, proposal string) (*models.Application, error) {
	influencer, err := s.influencers.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, ErrCampaignNotOpen
	}

	if len(strings.TrimSpace(proposal)) < models.MinProposalLength {
		return nil, ErrProposalTooShort
	}

	app := &models.Application{
		CampaignID:   campaignID,
		InfluencerID: influencer.ID,
		Proposal:     proposal,
		Status:       models.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &actorUserID,
		ActorType:   "user",
		Action:      "application_submitted",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String()},
	})

	// Post-commit, best-effort: the submission already succeeded.
	if brand, err := s.brands.GetByID(ctx, campaign.BrandID); err != nil {
		s.log.Warn("could not resolve campaign owner for notification",
			zap.String("campaign_id", campaignID.String()), zap.Error(err))
	} else {
		s.notifier.NewApplication(ctx, brand.UserID, influencer, campaign)
	}

	return app, nil
}

// Decide accepts or rejects a pending application. Only the brand that owns
// the parent campaign may decide, and only once: a second call fails with
// ErrInvalidTransition and produces no second notification.
func (s *ApplicationService) Decide(ctx context.Context, actorUserID, applicationID uuid.UUID, decision string) (*models.Application, error) {
	var newStatus string
	switch decision {
	case "accept":
		newStatus = models.ApplicationStatusAccepted
	case "reject":
		newStatus = models.ApplicationStatusRejected
	default:
		return nil, ErrInvalidDecision
	}

	brand, err := s.brands.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	campaign, err := s.campaigns.GetByID(ctx, app.CampaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if campaign.BrandID != brand.ID {
		return nil, ErrNotAuthorized
	}

	if !models.IsValidApplicationTransition(app.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	// Conditional update: only flips the row if it is still pending, so two
	// racing decisions are serialized by the store.
	updated, err := s.applications.UpdateStatusIfPending(ctx, applicationID, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrInvalidTransition
	}
	oldStatus := app.Status
	app.Status = newStatus

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &actorUserID,
		ActorType:   "user",
		Action:      "application_" + oldStatus + "_to_" + newStatus,
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	if influencer, err := s.influencers.GetByID(ctx, app.InfluencerID); err != nil {
		s.log.Warn("could not resolve applicant for notification",
			zap.String("application_id", applicationID.String()), zap.Error(err))
	} else if newStatus == models.ApplicationStatusAccepted {
		s.notifier.ApplicationApproved(ctx, influencer.UserID, campaign)
	} else {
		s.notifier.ApplicationRejected(ctx, influencer.UserID, campaign)
	}

	return app, nil
}

// MarkViewed lets the owning brand flag an application as seen. Fires an
// application_viewed notification once while the application is pending; no
// status change.
func (s *ApplicationService) MarkViewed(ctx context.Context, actorUserID, applicationID uuid.UUID) error {
	brand, err := s.brands.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProfileRequired
		}
		return err
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	campaign, err := s.campaigns.GetByID(ctx, app.CampaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if campaign.BrandID != brand.ID {
		return ErrNotAuthorized
	}

	if app.Status != models.ApplicationStatusPending {
		return nil
	}

	influencer, err := s.influencers.GetByID(ctx, app.InfluencerID)
	if err != nil {
		s.log.Warn("could not resolve applicant for viewed notification", zap.Error(err))
		return nil
	}
	s.notifier.ApplicationViewed(ctx, influencer.UserID, campaign, app.ID)
	return nil
}

// Get returns one application. Visible to the applicant and to the brand
// owning the parent campaign.
func (s *ApplicationService) Get(ctx context.Context, actorUserID, applicationID uuid.UUID) (*models.Application, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if influencer, err := s.influencers.GetByUserID(ctx, actorUserID); err == nil && influencer.ID == app.InfluencerID {
		return app, nil
	}
	if brand, err := s.brands.GetByUserID(ctx, actorUserID); err == nil {
		campaign, err := s.campaigns.GetByID(ctx, app.CampaignID)
		if err == nil && campaign.BrandID == brand.ID {
			return app, nil
		}
	}
	return nil, ErrNotAuthorized
}

// ListForCampaign returns a campaign's applications, newest first, to the
// owning brand only.
func (s *ApplicationService) ListForCampaign(ctx context.Context, actorUserID, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	brand, err := s.brands.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if campaign.BrandID != brand.ID {
		return nil, ErrNotAuthorized
	}

	return s.applications.ListByCampaign(ctx, campaignID)
}

// ListMine returns the acting influencer's own applications.
func (s *ApplicationService) ListMine(ctx context.Context, actorUserID uuid.UUID) ([]models.Application, error) {
	influencer, err := s.influencers.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}
	return s.applications.ListByInfluencer(ctx, influencer.ID)
}
