package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type workerBookingRepository struct {
	db *sql.DB
}

func NewWorkerBookingRepository(db *sql.DB) repository.WorkerBookingRepository {
	return &workerBookingRepository{db: db}
}

const workerBookingColumns = `id, tenant_id, worker_id, service_type, status, booking_date, tenant_name, tenant_address, resolved_on, debooked_on`

func scanWorkerBooking(row interface{ Scan(...any) error }, extra ...any) (*domain.WorkerBooking, error) {
	b := &domain.WorkerBooking{}
	var resolvedOn, debookedOn sql.NullTime
	dest := []any{&b.ID, &b.TenantID, &b.WorkerID, &b.ServiceType, &b.Status, &b.BookingDate,
		&b.TenantName, &b.TenantAddress, &resolvedOn, &debookedOn}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	b.ResolvedOn = timePtr(resolvedOn)
	b.DebookedOn = timePtr(debookedOn)
	return b, nil
}

func (r *workerBookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.WorkerBooking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.WorkerBooking
	for rows.Next() {
		b, err := scanWorkerBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *workerBookingRepository) Create(ctx context.Context, b *domain.WorkerBooking) error {
	query := `INSERT INTO worker_bookings (tenant_id, worker_id, service_type, status, tenant_name, tenant_address)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, booking_date`
	logger.DatabaseCall("INSERT", "worker_bookings", "tenantID", b.TenantID, "workerID", b.WorkerID)
	err := r.db.QueryRowContext(ctx, query, b.TenantID, b.WorkerID, b.ServiceType, b.Status, b.TenantName, b.TenantAddress).
		Scan(&b.ID, &b.BookingDate)
	logger.DatabaseResult("INSERT", 1, err, "workerBookingID", b.ID)
	return err
}

func (r *workerBookingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM worker_bookings WHERE id = $1`, id)
	return err
}

func (r *workerBookingRepository) Resolve(ctx context.Context, id, workerID int32, status domain.WorkerBookingStatus) (*domain.WorkerBooking, domain.WorkerBookingStatus, error) {
	logger.EnterMethod("workerBookingRepository.Resolve", "workerBookingID", id, "workerID", workerID, "status", status)

	query := `WITH prev AS (
	              SELECT id, status FROM worker_bookings
	              WHERE id = $1 AND worker_id = $2 AND status IN ('PENDING', $3::varchar)
	              FOR UPDATE
	          )
	          UPDATE worker_bookings wb SET status = $3::varchar, resolved_on = COALESCE(wb.resolved_on, NOW())
	          FROM prev WHERE wb.id = prev.id
	          RETURNING wb.id, wb.tenant_id, wb.worker_id, wb.service_type, wb.status, wb.booking_date,
	                    wb.tenant_name, wb.tenant_address, wb.resolved_on, wb.debooked_on, prev.status`

	var previous domain.WorkerBookingStatus
	b, err := scanWorkerBooking(r.db.QueryRowContext(ctx, query, id, workerID, status), &previous)
	if err != nil {
		err = mapError(err, "worker booking")
		logger.ExitMethodWithError("workerBookingRepository.Resolve", err, "workerBookingID", id)
		return nil, "", err
	}
	logger.ExitMethod("workerBookingRepository.Resolve", "workerBookingID", id, "previous", previous)
	return b, previous, nil
}

func (r *workerBookingRepository) SetStatus(ctx context.Context, id int32, status domain.WorkerBookingStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE worker_bookings SET status = $1 WHERE id = $2`, status, id)
	return err
}

// ListForPair lists the pair's bookings oldest first, optionally filtered by status.
func (r *workerBookingRepository) ListForPair(ctx context.Context, tenantID, workerID int32, statuses ...domain.WorkerBookingStatus) ([]domain.WorkerBooking, error) {
	filter := make([]string, len(statuses))
	for i, s := range statuses {
		filter[i] = string(s)
	}
	query := `SELECT ` + workerBookingColumns + ` FROM worker_bookings
	          WHERE tenant_id = $1 AND worker_id = $2 AND (cardinality($3::text[]) = 0 OR status = ANY($3))
	          ORDER BY booking_date ASC`
	return r.queryBookings(ctx, query, tenantID, workerID, pq.Array(filter))
}

func (r *workerBookingRepository) Debook(ctx context.Context, tenantID, workerID int32, at time.Time) ([]int32, error) {
	query := `UPDATE worker_bookings SET status = 'DEBOOKED', debooked_on = $3
	          WHERE tenant_id = $1 AND worker_id = $2 AND status = 'APPROVED' RETURNING id`
	logger.DatabaseCall("UPDATE", "worker_bookings", "tenantID", tenantID, "workerID", workerID, "status", "DEBOOKED")
	rows, err := r.db.QueryContext(ctx, query, tenantID, workerID, at)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	logger.DatabaseResult("UPDATE", int64(len(ids)), rows.Err())
	return ids, rows.Err()
}

func (r *workerBookingRepository) Restore(ctx context.Context, ids []int32, status domain.WorkerBookingStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE worker_bookings SET status = $1, debooked_on = NULL WHERE id = ANY($2)`,
		status, pq.Array(ids))
	return err
}

func (r *workerBookingRepository) ListByWorker(ctx context.Context, workerID int32) ([]domain.WorkerBooking, error) {
	query := `SELECT ` + workerBookingColumns + ` FROM worker_bookings WHERE worker_id = $1 ORDER BY booking_date DESC`
	return r.queryBookings(ctx, query, workerID)
}

// ListWorkersForTenant is the tenant's set of engaged workers.
func (r *workerBookingRepository) ListWorkersForTenant(ctx context.Context, tenantID int32) ([]domain.Worker, error) {
	query := workerSelect + ` WHERE u.id IN (SELECT worker_id FROM worker_bookings WHERE tenant_id = $1 AND status = 'APPROVED') ORDER BY u.name`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []domain.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

// ListClientsForWorker is the worker's set of engaged tenants.
func (r *workerBookingRepository) ListClientsForWorker(ctx context.Context, workerID int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
	          WHERE id IN (SELECT tenant_id FROM worker_bookings WHERE worker_id = $1 AND status = 'APPROVED') ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *u)
	}
	return clients, rows.Err()
}

// ListMonthlyEngagements returns the earliest approved booking of every
// tenant-worker pair whose worker bills monthly.
func (r *workerBookingRepository) ListMonthlyEngagements(ctx context.Context) ([]domain.WorkerBooking, error) {
	query := `SELECT DISTINCT ON (wb.tenant_id, wb.worker_id) wb.id, wb.tenant_id, wb.worker_id, wb.service_type, wb.status,
	                 wb.booking_date, wb.tenant_name, wb.tenant_address, wb.resolved_on, wb.debooked_on
	          FROM worker_bookings wb JOIN worker_profiles p ON p.worker_id = wb.worker_id
	          WHERE wb.status = 'APPROVED' AND p.rate_unit = 'MONTHLY'
	          ORDER BY wb.tenant_id, wb.worker_id, wb.booking_date ASC`
	return r.queryBookings(ctx, query)
}
