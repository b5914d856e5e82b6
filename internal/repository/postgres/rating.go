package postgres

import (
	"context"
	"database/sql"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/repository"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, rt *domain.Rating) error {
	query := `INSERT INTO ratings (tenant_id, property_id, score, comment) VALUES ($1, $2, $3, $4)
	          ON CONFLICT (tenant_id, property_id) DO UPDATE SET score = EXCLUDED.score, comment = EXCLUDED.comment, created_on = NOW()
	          RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, rt.TenantID, rt.PropertyID, rt.Score, rt.Comment).Scan(&rt.ID, &rt.CreatedOn)
}

func (r *ratingRepository) AverageForProperty(ctx context.Context, propertyID int32) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(AVG(score), 0) FROM ratings WHERE property_id = $1`, propertyID).Scan(&avg)
	return avg, err
}
