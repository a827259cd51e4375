package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// Create inserts a pending application. The unique index on
// (campaign_id, influencer_id) makes a second insert for the same pair fail
// with ErrDuplicateKey, so racing submissions cannot both persist.
func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications (campaign_id, influencer_id, proposal, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerID, a.Proposal, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translateErr(err)
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, proposal, status, created_at, updated_at
		FROM applications WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Proposal, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *ApplicationRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_id, a.proposal, a.status, a.created_at, a.updated_at,
		       i.display_name, i.handle
		FROM applications a
		JOIN influencers i ON i.id = a.influencer_id
		WHERE a.campaign_id = $1
		ORDER BY a.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithInfluencer
	for rows.Next() {
		var a models.ApplicationWithInfluencer
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Proposal, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.InfluencerDisplayName, &a.InfluencerHandle); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}

func (r *ApplicationRepo) ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, influencer_id, proposal, status, created_at, updated_at
		FROM applications WHERE influencer_id = $1
		ORDER BY created_at DESC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Proposal, &a.Status,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// UpdateStatusIfPending performs the conditional decide update. It returns
// false when the row was not in pending status anymore, which serializes two
// racing decisions at the store level.
func (r *ApplicationRepo) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE applications SET status = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending'
	`, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
