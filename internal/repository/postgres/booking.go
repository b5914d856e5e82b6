package postgres

import (
	"context"
	"database/sql"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, tenant_id, property_id, owner_id, status, start_date, end_date, lease_months, comments, created_on, updated_on`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.TenantID, &b.PropertyID, &b.OwnerID, &b.Status, &b.StartDate, &b.EndDate,
		&b.LeaseMonths, &b.Comments, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	logger.EnterMethod("bookingRepository.Create", "tenantID", b.TenantID, "propertyID", b.PropertyID)

	query := `INSERT INTO bookings (tenant_id, property_id, owner_id, status, start_date, end_date, lease_months, comments)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on, updated_on`
	logger.DatabaseCall("INSERT", "bookings", "tenantID", b.TenantID, "propertyID", b.PropertyID)
	err := r.db.QueryRowContext(ctx, query, b.TenantID, b.PropertyID, b.OwnerID, b.Status,
		b.StartDate.Format("2006-01-02"), b.EndDate.Format("2006-01-02"), b.LeaseMonths, b.Comments).
		Scan(&b.ID, &b.CreatedOn, &b.UpdatedOn)
	logger.DatabaseResult("INSERT", 1, err, "bookingID", b.ID)

	if err != nil {
		logger.ExitMethodWithError("bookingRepository.Create", err, "tenantID", b.TenantID)
		return err
	}
	logger.ExitMethod("bookingRepository.Create", "bookingID", b.ID)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "booking")
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_on = NOW() WHERE id = $2 AND status = $3`
	logger.DatabaseCall("UPDATE", "bookings", "bookingID", id, "from", from, "to", to)
	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, mapError(err, "active booking"), "bookingID", id)
		return mapError(err, "active booking")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	logger.DatabaseResult("UPDATE", rows, nil, "bookingID", id)
	if rows == 0 {
		return domain.NewConflictError("booking %d is no longer %s", id, from)
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}

func (r *bookingRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Booking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE tenant_id = $1 ORDER BY created_on DESC`, tenantID)
}

// ListByOwner lists the owner's bookings; an empty status lists all of them.
func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 AND ($2::text = '' OR status = $2::text) ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, ownerID, string(status))
}

func (r *bookingRepository) HasPending(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE tenant_id = $1 AND property_id = $2 AND status = 'PENDING')`
	err := r.db.QueryRowContext(ctx, query, tenantID, propertyID).Scan(&exists)
	return exists, err
}
