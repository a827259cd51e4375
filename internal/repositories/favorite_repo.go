package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepo struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepo(pool *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{pool: pool}
}

// Toggle adds the (user, campaign) pair, or removes it if already present.
// Returns true when the campaign is saved after the call.
func (r *FavoriteRepo) Toggle(ctx context.Context, userID, campaignID uuid.UUID) (bool, error) {
	var f models.Favorite
	err := r.pool.QueryRow(ctx, `
		INSERT INTO favorites (user_id, campaign_id)
		VALUES ($1, $2)
		RETURNING id, user_id, campaign_id, created_at
	`, userID, campaignID).Scan(&f.ID, &f.UserID, &f.CampaignID, &f.CreatedAt)
	if err == nil {
		return true, nil
	}
	if !errors.Is(translateErr(err), ErrDuplicateKey) {
		return false, err
	}

	_, err = r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND campaign_id = $2
	`, userID, campaignID)
	return false, err
}

func (r *FavoriteRepo) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]models.CampaignWithBrand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.brand_id, c.title, c.description, c.requirements, c.budget_min, c.budget_max,
		       c.category, c.start_date, c.end_date, c.status, c.created_at, c.updated_at,
		       b.company_name
		FROM favorites f
		JOIN campaigns c ON c.id = f.campaign_id
		JOIN brands b ON b.id = c.brand_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.CampaignWithBrand
	for rows.Next() {
		var c models.CampaignWithBrand
		if err := rows.Scan(&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Requirements,
			&c.BudgetMin, &c.BudgetMax, &c.Category, &c.StartDate, &c.EndDate,
			&c.Status, &c.CreatedAt, &c.UpdatedAt, &c.BrandCompanyName); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
