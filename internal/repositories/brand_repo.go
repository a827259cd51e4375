package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

func (r *BrandRepo) Create(ctx context.Context, b *models.Brand) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO brands (user_id, company_name, description, website, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, b.UserID, b.CompanyName, b.Description, b.Website, b.Category,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return translateErr(err)
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, description, website, category, created_at, updated_at
		FROM brands WHERE id = $1
	`, id).Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Description, &b.Website, &b.Category, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

func (r *BrandRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, description, website, category, created_at, updated_at
		FROM brands WHERE user_id = $1
	`, userID).Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Description, &b.Website, &b.Category, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *models.Brand) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE brands SET company_name = $1, description = $2, website = $3, category = $4, updated_at = now()
		WHERE id = $5
	`, b.CompanyName, b.Description, b.Website, b.Category, b.ID)
	return err
}
