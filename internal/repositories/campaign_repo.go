package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (brand_id, title, description, requirements, budget_min, budget_max, category, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, c.BrandID, c.Title, c.Description, c.Requirements, c.BudgetMin, c.BudgetMax,
		c.Category, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translateErr(err)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, brand_id, title, description, requirements, budget_min, budget_max,
		       category, start_date, end_date, status, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.BrandID, &c.Title, &c.Description, &c.Requirements,
		&c.BudgetMin, &c.BudgetMax, &c.Category, &c.StartDate, &c.EndDate,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET title = $1, description = $2, requirements = $3,
		       budget_min = $4, budget_max = $5, category = $6,
		       start_date = $7, end_date = $8, status = $9, updated_at = now()
		WHERE id = $10
	`, c.Title, c.Description, c.Requirements, c.BudgetMin, c.BudgetMax,
		c.Category, c.StartDate, c.EndDate, c.Status, c.ID)
	return err
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

// CloseExpired moves active campaigns whose end date has passed to closed and
// returns the affected ids.
func (r *CampaignRepo) CloseExpired(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE campaigns SET status = 'closed', updated_at = now()
		WHERE status = 'active' AND end_date IS NOT NULL AND end_date < now()
		RETURNING id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type CampaignFilter struct {
	BrandID  *uuid.UUID
	Status   *string
	Category *string
	Limit    int
	Offset   int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.CampaignWithBrand, error) {
	query := `
		SELECT c.id, c.brand_id, c.title, c.description, c.requirements, c.budget_min, c.budget_max,
		       c.category, c.start_date, c.end_date, c.status, c.created_at, c.updated_at,
		       b.company_name
		FROM campaigns c
		JOIN brands b ON b.id = c.brand_id
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("c.brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("c.status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.Category != nil {
		// Campaigns with NULL category target all categories
		where = append(where, fmt.Sprintf("(c.category = $%d OR c.category IS NULL)", argIdx))
		args = append(args, *f.Category)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
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
