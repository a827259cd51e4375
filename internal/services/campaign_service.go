package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	brandRepo    *repositories.BrandRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	brandRepo *repositories.BrandRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *CampaignService) resolveBrand(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}
	return brand, nil
}

// Create publishes a campaign in draft or active status.
func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	brand, err := s.resolveBrand(ctx, userID)
	if err != nil {
		return err
	}

	if c.Status == "" {
		c.Status = models.CampaignStatusDraft
	}
	if c.Status != models.CampaignStatusDraft && c.Status != models.CampaignStatusActive {
		return ErrInvalidStatus
	}

	c.BrandID = brand.ID
	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})
	return nil
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Browse lists active campaigns for influencers, optionally by category.
func (s *CampaignService) Browse(ctx context.Context, f repositories.CampaignFilter) ([]models.CampaignWithBrand, error) {
	status := models.CampaignStatusActive
	f.Status = &status
	f.BrandID = nil
	return s.campaignRepo.List(ctx, f)
}

// ListMine lists the acting brand's own campaigns in any status.
func (s *CampaignService) ListMine(ctx context.Context, userID uuid.UUID, f repositories.CampaignFilter) ([]models.CampaignWithBrand, error) {
	brand, err := s.resolveBrand(ctx, userID)
	if err != nil {
		return nil, err
	}
	f.BrandID = &brand.ID
	return s.campaignRepo.List(ctx, f)
}

func (s *CampaignService) getOwned(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Campaign, error) {
	brand, err := s.resolveBrand(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.BrandID != brand.ID {
		return nil, ErrNotAuthorized
	}
	return existing, nil
}

func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, c *models.Campaign) error {
	existing, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	c.ID = id
	c.BrandID = existing.BrandID
	c.Status = existing.Status
	return s.campaignRepo.Update(ctx, c)
}

// ChangeStatus moves a campaign along draft -> active -> closed (and back to
// active on reopen) or to completed.
func (s *CampaignService) ChangeStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, newStatus string) (*models.Campaign, error) {
	existing, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidCampaignTransition(existing.Status, newStatus) {
		return nil, ErrInvalidTransition
	}
	if err := s.campaignRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	oldStatus := existing.Status
	existing.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_" + oldStatus + "_to_" + newStatus,
		EntityType:  "campaign",
		EntityID:    &id,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})
	return existing, nil
}

// Delete hard-deletes an owned campaign; the store cascades applications and
// favorites.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.campaignRepo.Delete(ctx, id)
}
