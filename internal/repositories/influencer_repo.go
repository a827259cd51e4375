package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

func (r *InfluencerRepo) Create(ctx context.Context, inf *models.Influencer) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO influencers (user_id, display_name, handle, bio, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, inf.UserID, inf.DisplayName, inf.Handle, inf.Bio, inf.Category,
	).Scan(&inf.ID, &inf.CreatedAt, &inf.UpdatedAt)
	return translateErr(err)
}

func (r *InfluencerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	var inf models.Influencer
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, handle, bio, category, follower_count, created_at, updated_at
		FROM influencers WHERE id = $1
	`, id).Scan(&inf.ID, &inf.UserID, &inf.DisplayName, &inf.Handle, &inf.Bio, &inf.Category,
		&inf.FollowerCount, &inf.CreatedAt, &inf.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &inf, nil
}

func (r *InfluencerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Influencer, error) {
	var inf models.Influencer
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, handle, bio, category, follower_count, created_at, updated_at
		FROM influencers WHERE user_id = $1
	`, userID).Scan(&inf.ID, &inf.UserID, &inf.DisplayName, &inf.Handle, &inf.Bio, &inf.Category,
		&inf.FollowerCount, &inf.CreatedAt, &inf.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &inf, nil
}

func (r *InfluencerRepo) Update(ctx context.Context, inf *models.Influencer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE influencers SET display_name = $1, handle = $2, bio = $3, category = $4, updated_at = now()
		WHERE id = $5
	`, inf.DisplayName, inf.Handle, inf.Bio, inf.Category, inf.ID)
	return translateErr(err)
}

func (r *InfluencerRepo) UpdateFollowerCount(ctx context.Context, id uuid.UUID, count int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE influencers SET follower_count = $1, updated_at = now() WHERE id = $2
	`, count, id)
	return err
}

type InfluencerFilter struct {
	Category *string
	Limit    int
	Offset   int
}

func (r *InfluencerRepo) List(ctx context.Context, f InfluencerFilter) ([]models.Influencer, error) {
	query := `
		SELECT id, user_id, display_name, handle, bio, category, follower_count, created_at, updated_at
		FROM influencers
	`
	args := []any{}
	argIdx := 1

	if f.Category != nil {
		query += fmt.Sprintf(" WHERE category = $%d", argIdx)
		args = append(args, *f.Category)
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY follower_count DESC NULLS LAST, created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var influencers []models.Influencer
	for rows.Next() {
		var inf models.Influencer
		if err := rows.Scan(&inf.ID, &inf.UserID, &inf.DisplayName, &inf.Handle, &inf.Bio, &inf.Category,
			&inf.FollowerCount, &inf.CreatedAt, &inf.UpdatedAt); err != nil {
			return nil, err
		}
		influencers = append(influencers, inf)
	}
	return influencers, nil
}
