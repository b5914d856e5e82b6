package service

import (
	"context"
	"strings"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/repository"
)

type workerService struct {
	workerRepo repository.WorkerRepository
}

func NewWorkerService(workerRepo repository.WorkerRepository) WorkerService {
	return &workerService{workerRepo: workerRepo}
}

func (s *workerService) GetWorker(ctx context.Context, workerID int32) (*domain.Worker, error) {
	return s.workerRepo.GetByID(ctx, workerID)
}

func (s *workerService) UpdateProfile(ctx context.Context, w *domain.Worker) (*domain.Worker, error) {
	w.ServiceType = strings.TrimSpace(w.ServiceType)
	if w.ServiceType == "" {
		return nil, domain.NewValidationError("service type is required")
	}
	if !w.RateUnit.Valid() {
		return nil, domain.NewValidationError("rate unit must be HOURLY, DAILY or MONTHLY")
	}
	if w.PriceCents < 0 {
		return nil, domain.NewValidationError("price cannot be negative")
	}
	if w.ExperienceYears < 0 {
		return nil, domain.NewValidationError("experience cannot be negative")
	}
	if err := s.workerRepo.UpdateProfile(ctx, w); err != nil {
		return nil, err
	}
	return s.workerRepo.GetByID(ctx, w.ID)
}

func (s *workerService) ToggleAvailability(ctx context.Context, workerID int32) (domain.ServiceStatus, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return "", err
	}
	next := domain.ServiceStatusAvailable
	if w.ServiceStatus == domain.ServiceStatusAvailable {
		next = domain.ServiceStatusUnavailable
	}
	if err := s.workerRepo.SetServiceStatus(ctx, workerID, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *workerService) ListAvailable(ctx context.Context, serviceType, location string) ([]domain.Worker, error) {
	return s.workerRepo.ListAvailable(ctx, strings.TrimSpace(serviceType), strings.TrimSpace(location))
}
