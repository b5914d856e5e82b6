package service

import (
	"context"
	"strings"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type accountService struct {
	userRepo          repository.UserRepository
	propertyRepo      repository.PropertyRepository
	workerBookingRepo repository.WorkerBookingRepository
}

func NewAccountService(userRepo repository.UserRepository, propertyRepo repository.PropertyRepository, workerBookingRepo repository.WorkerBookingRepository) AccountService {
	return &accountService{
		userRepo:          userRepo,
		propertyRepo:      propertyRepo,
		workerBookingRepo: workerBookingRepo,
	}
}

// DeleteAccount removes the user once nothing live depends on them. Owned
// rows go with the user through ON DELETE CASCADE.
func (s *accountService) DeleteAccount(ctx context.Context, userID int32, userType domain.UserType) error {
	logger.EnterMethod("accountService.DeleteAccount", "userID", userID, "userType", userType)

	switch userType {
	case domain.UserTypeOwner:
		rented, err := s.propertyRepo.CountRentedByOwner(ctx, userID)
		if err != nil {
			return err
		}
		if rented > 0 {
			return domain.NewConflictError("cannot delete account while %d of your properties are rented", rented)
		}
	case domain.UserTypeTenant:
		renting, err := s.propertyRepo.ListByTenant(ctx, userID)
		if err != nil {
			return err
		}
		if len(renting) > 0 {
			return domain.NewConflictError("cannot delete account while renting a property")
		}
	case domain.UserTypeWorker:
		clients, err := s.workerBookingRepo.ListClientsForWorker(ctx, userID)
		if err != nil {
			return err
		}
		if len(clients) > 0 {
			return domain.NewConflictError("cannot delete account while booked by %d clients", len(clients))
		}
	case domain.UserTypeAdmin:
		return domain.NewAuthorizationError("admin accounts cannot be deleted")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.ExitMethodWithError("accountService.DeleteAccount", err, "userID", userID)
		return err
	}
	logger.ExitMethod("accountService.DeleteAccount", "userID", userID)
	return nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID int32, name, phone, address string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Phone = strings.TrimSpace(phone)
	user.Address = strings.TrimSpace(address)
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
