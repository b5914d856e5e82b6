package postgres

import (
	"database/sql"

	"rentease-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.WorkerRepository
	repository.PropertyRepository
	repository.BookingRepository
	repository.WorkerBookingRepository
	repository.PaymentRepository
	repository.WorkerPaymentRepository
	repository.NotificationRepository
	repository.MaintenanceRepository
	repository.RatingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		WorkerRepository:        NewWorkerRepository(db),
		PropertyRepository:      NewPropertyRepository(db),
		BookingRepository:       NewBookingRepository(db),
		WorkerBookingRepository: NewWorkerBookingRepository(db),
		PaymentRepository:       NewPaymentRepository(db),
		WorkerPaymentRepository: NewWorkerPaymentRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
		MaintenanceRepository:   NewMaintenanceRepository(db),
		RatingRepository:        NewRatingRepository(db),
	}
}

// DB exposes the underlying pool for health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}
