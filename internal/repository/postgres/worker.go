package postgres

import (
	"context"
	"database/sql"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type workerRepository struct {
	db *sql.DB
}

func NewWorkerRepository(db *sql.DB) repository.WorkerRepository {
	return &workerRepository{db: db}
}

const workerSelect = `SELECT u.id, u.name, u.email, u.phone, p.service_type, p.price_cents, p.rate_unit,
	p.service_status, p.experience_years, p.location, p.description,
	EXISTS (SELECT 1 FROM worker_bookings wb WHERE wb.worker_id = u.id AND wb.status = 'APPROVED') AS is_booked
	FROM users u JOIN worker_profiles p ON p.worker_id = u.id`

func scanWorker(row interface{ Scan(...any) error }) (*domain.Worker, error) {
	w := &domain.Worker{}
	err := row.Scan(&w.ID, &w.Name, &w.Email, &w.Phone, &w.ServiceType, &w.PriceCents, &w.RateUnit,
		&w.ServiceStatus, &w.ExperienceYears, &w.Location, &w.Description, &w.IsBooked)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *workerRepository) CreateProfile(ctx context.Context, w *domain.Worker) error {
	query := `INSERT INTO worker_profiles (worker_id, service_type, price_cents, rate_unit, service_status, experience_years, location, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	logger.DatabaseCall("INSERT", "worker_profiles", "workerID", w.ID)
	_, err := r.db.ExecContext(ctx, query, w.ID, w.ServiceType, w.PriceCents, w.RateUnit, w.ServiceStatus, w.ExperienceYears, w.Location, w.Description)
	logger.DatabaseResult("INSERT", 1, err, "workerID", w.ID)
	return mapError(err, "worker profile")
}

func (r *workerRepository) GetByID(ctx context.Context, id int32) (*domain.Worker, error) {
	w, err := scanWorker(r.db.QueryRowContext(ctx, workerSelect+` WHERE u.id = $1 AND u.user_type = 'WORKER'`, id))
	if err != nil {
		return nil, mapError(err, "worker")
	}
	return w, nil
}

func (r *workerRepository) UpdateProfile(ctx context.Context, w *domain.Worker) error {
	query := `UPDATE worker_profiles SET service_type=$1, price_cents=$2, rate_unit=$3, experience_years=$4, location=$5, description=$6
	          WHERE worker_id=$7`
	result, err := r.db.ExecContext(ctx, query, w.ServiceType, w.PriceCents, w.RateUnit, w.ExperienceYears, w.Location, w.Description, w.ID)
	if err != nil {
		return err
	}
	return requireRows(result, "worker")
}

func (r *workerRepository) SetServiceStatus(ctx context.Context, id int32, status domain.ServiceStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE worker_profiles SET service_status=$1 WHERE worker_id=$2`, status, id)
	if err != nil {
		return err
	}
	return requireRows(result, "worker")
}

func (r *workerRepository) ListAvailable(ctx context.Context, serviceType, location string) ([]domain.Worker, error) {
	query := workerSelect + ` WHERE p.service_status = 'AVAILABLE'
	          AND ($1::text = '' OR LOWER(p.service_type) = LOWER($1::text))
	          AND ($2::text = '' OR p.location ILIKE '%' || $2::text || '%')
	          ORDER BY u.name`
	rows, err := r.db.QueryContext(ctx, query, serviceType, location)
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
