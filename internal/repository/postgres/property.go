package postgres

import (
	"context"
	"database/sql"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, owner_id, tenant_id, title, address, description, status, is_rented, is_verified, price_cents, average_rating, created_on, updated_on`

func scanProperty(row interface{ Scan(...any) error }) (*domain.Property, error) {
	p := &domain.Property{}
	var tenantID sql.NullInt32
	err := row.Scan(&p.ID, &p.OwnerID, &tenantID, &p.Title, &p.Address, &p.Description, &p.Status,
		&p.IsRented, &p.IsVerified, &p.PriceCents, &p.AverageRating, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	p.TenantID = int32Ptr(tenantID)
	return p, nil
}

func (r *propertyRepository) queryProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (owner_id, title, address, description, status, is_rented, is_verified, price_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on, updated_on`
	logger.DatabaseCall("INSERT", "properties", "ownerID", p.OwnerID)
	err := r.db.QueryRowContext(ctx, query, p.OwnerID, p.Title, p.Address, p.Description, p.Status, p.IsRented, p.IsVerified, p.PriceCents).
		Scan(&p.ID, &p.CreatedOn, &p.UpdatedOn)
	logger.DatabaseResult("INSERT", 1, err, "propertyID", p.ID)
	return err
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "property")
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET tenant_id=$1, title=$2, address=$3, description=$4, status=$5, is_rented=$6,
	          is_verified=$7, price_cents=$8, updated_on=NOW() WHERE id=$9`
	logger.DatabaseCall("UPDATE", "properties", "propertyID", p.ID, "status", p.Status, "isRented", p.IsRented)
	result, err := r.db.ExecContext(ctx, query, nullInt32(p.TenantID), p.Title, p.Address, p.Description, p.Status,
		p.IsRented, p.IsVerified, p.PriceCents, p.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "propertyID", p.ID)
		return err
	}
	return requireRows(result, "property")
}

func (r *propertyRepository) SetRentalState(ctx context.Context, id int32, st domain.RentalState) error {
	query := `UPDATE properties SET tenant_id=$1, is_rented=$2, status=$3, updated_on=NOW() WHERE id=$4`
	logger.DatabaseCall("UPDATE", "properties", "propertyID", id, "status", st.Status, "isRented", st.IsRented)
	result, err := r.db.ExecContext(ctx, query, nullInt32(st.TenantID), st.IsRented, st.Status, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "propertyID", id)
		return err
	}
	return requireRows(result, "property")
}

func (r *propertyRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(result, "property")
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	return r.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties WHERE owner_id = $1 ORDER BY created_on DESC`, ownerID)
}

func (r *propertyRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Property, error) {
	return r.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties WHERE tenant_id = $1 ORDER BY updated_on DESC`, tenantID)
}

// Search lists verified, unrented properties. maxPriceCents <= 0 means no limit.
func (r *propertyRepository) Search(ctx context.Context, maxPriceCents int32, page, pageSize int32) ([]domain.Property, int32, error) {
	where := ` FROM properties WHERE is_verified = TRUE AND is_rented = FALSE AND ($1 <= 0 OR price_cents <= $1)`

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+where, maxPriceCents).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	properties, err := r.queryProperties(ctx, `SELECT `+propertyColumns+where+` ORDER BY created_on DESC LIMIT $2 OFFSET $3`,
		maxPriceCents, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return properties, count, nil
}

func (r *propertyRepository) CountRentedByOwner(ctx context.Context, ownerID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM properties WHERE owner_id = $1 AND is_rented = TRUE`, ownerID).Scan(&count)
	return count, err
}

func (r *propertyRepository) SetAverageRating(ctx context.Context, id int32, avg float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE properties SET average_rating = $1 WHERE id = $2`, avg, id)
	return err
}

// ToggleSaved adds or removes the property from the tenant's saved list and
// reports whether it is saved afterwards.
func (r *propertyRepository) ToggleSaved(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_properties WHERE tenant_id = $1 AND property_id = $2`, tenantID, propertyID)
	if err != nil {
		return false, err
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, nil
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO saved_properties (tenant_id, property_id) VALUES ($1, $2)`, tenantID, propertyID)
	if err != nil {
		return false, mapError(err, "saved property")
	}
	return true, nil
}
