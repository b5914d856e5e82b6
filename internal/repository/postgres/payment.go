package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, tenant_id, property_id, booking_id, amount_cents, due_date, payment_date, payment_method, status, created_on`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	var bookingID sql.NullInt32
	var paymentDate sql.NullTime
	err := row.Scan(&p.ID, &p.TenantID, &p.PropertyID, &bookingID, &p.AmountCents, &p.DueDate, &paymentDate,
		&p.PaymentMethod, &p.Status, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	p.BookingID = int32Ptr(bookingID)
	p.PaymentDate = timePtr(paymentDate)
	return p, nil
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (tenant_id, property_id, booking_id, amount_cents, due_date, payment_method, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "payments", "tenantID", p.TenantID, "propertyID", p.PropertyID)
	err := r.db.QueryRowContext(ctx, query, p.TenantID, p.PropertyID, nullInt32(p.BookingID), p.AmountCents,
		p.DueDate.Format("2006-01-02"), p.PaymentMethod, p.Status).Scan(&p.ID, &p.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "paymentID", p.ID)
	return err
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "payment")
	}
	return p, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.PaymentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE payments SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewConflictError("payment %d is not %s", id, from)
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	return r.queryPayments(ctx, `SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 ORDER BY due_date DESC`, tenantID)
}

// MarkOverdue flips PENDING payments due before the given day to OVERDUE and
// returns them.
func (r *paymentRepository) MarkOverdue(ctx context.Context, before time.Time) ([]domain.Payment, error) {
	query := `UPDATE payments SET status = 'OVERDUE' WHERE status = 'PENDING' AND due_date < $1 RETURNING ` + paymentColumns
	return r.queryPayments(ctx, query, before.Format("2006-01-02"))
}

type workerPaymentRepository struct {
	db *sql.DB
}

func NewWorkerPaymentRepository(db *sql.DB) repository.WorkerPaymentRepository {
	return &workerPaymentRepository{db: db}
}

const workerPaymentColumns = `id, tenant_id, worker_id, amount_cents, payment_date, payment_method, status, transaction_id, receipt_url, created_on`

func scanWorkerPayment(row interface{ Scan(...any) error }) (*domain.WorkerPayment, error) {
	p := &domain.WorkerPayment{}
	err := row.Scan(&p.ID, &p.TenantID, &p.WorkerID, &p.AmountCents, &p.PaymentDate, &p.PaymentMethod, &p.Status,
		&p.TransactionID, &p.ReceiptURL, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *workerPaymentRepository) Create(ctx context.Context, p *domain.WorkerPayment) error {
	query := `INSERT INTO worker_payments (tenant_id, worker_id, amount_cents, payment_date, payment_method, status, transaction_id, receipt_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "worker_payments", "tenantID", p.TenantID, "workerID", p.WorkerID, "transactionID", p.TransactionID)
	err := r.db.QueryRowContext(ctx, query, p.TenantID, p.WorkerID, p.AmountCents, p.PaymentDate, p.PaymentMethod, p.Status,
		p.TransactionID, p.ReceiptURL).Scan(&p.ID, &p.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "workerPaymentID", p.ID)
	return mapError(err, "worker payment")
}

func (r *workerPaymentRepository) GetByID(ctx context.Context, id int32) (*domain.WorkerPayment, error) {
	p, err := scanWorkerPayment(r.db.QueryRowContext(ctx, `SELECT `+workerPaymentColumns+` FROM worker_payments WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "worker payment")
	}
	return p, nil
}

func (r *workerPaymentRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.PaymentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE worker_payments SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewConflictError("worker payment %d is not %s", id, from)
	}
	return nil
}

// HasPaidBetween reports whether a PAID payment exists in [start, end).
func (r *workerPaymentRepository) HasPaidBetween(ctx context.Context, tenantID, workerID int32, start, end time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM worker_payments
	          WHERE tenant_id = $1 AND worker_id = $2 AND status = 'PAID' AND payment_date >= $3 AND payment_date < $4)`
	logger.DatabaseCall("SELECT", "worker_payments", "tenantID", tenantID, "workerID", workerID, "start", start, "end", end)
	err := r.db.QueryRowContext(ctx, query, tenantID, workerID, start, end).Scan(&exists)
	logger.DatabaseResult("SELECT", 1, err, "paid", exists)
	return exists, err
}

func (r *workerPaymentRepository) ListByWorker(ctx context.Context, workerID int32) ([]domain.WorkerPayment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+workerPaymentColumns+` FROM worker_payments WHERE worker_id = $1 ORDER BY payment_date DESC`, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.WorkerPayment
	for rows.Next() {
		p, err := scanWorkerPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
