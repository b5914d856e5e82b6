package service

import (
	"context"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type adminService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	sessions     SessionIssuer
}

func NewAdminService(userRepo repository.UserRepository, propertyRepo repository.PropertyRepository, sessions SessionIssuer) AdminService {
	return &adminService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		sessions:     sessions,
	}
}

func (s *adminService) target(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType == domain.UserTypeAdmin {
		return nil, domain.NewAuthorizationError("admin accounts cannot be moderated")
	}
	return user, nil
}

// SetUserStatus activates or suspends an account. Suspension ends the
// user's live sessions; Login refuses the account until it is reactivated.
func (s *adminService) SetUserStatus(ctx context.Context, userID int32, status domain.UserStatus) (*domain.User, error) {
	logger.EnterMethod("adminService.SetUserStatus", "userID", userID, "status", status)
	if !status.Valid() {
		return nil, domain.NewValidationError("status must be ACTIVE or SUSPENDED")
	}
	user, err := s.target(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != status {
		if err := s.userRepo.SetStatus(ctx, userID, status); err != nil {
			logger.ExitMethodWithError("adminService.SetUserStatus", err, "userID", userID)
			return nil, err
		}
		user.Status = status
	}
	if status == domain.UserStatusSuspended {
		if err := s.sessions.RevokeUser(ctx, userID); err != nil {
			return nil, err
		}
	}
	logger.ExitMethod("adminService.SetUserStatus", "userID", userID, "status", status)
	return user, nil
}

// DeleteUser removes any non-admin account. Properties a tenant is renting
// are released first; an owner's listings and a worker's profile go with
// the user through ON DELETE CASCADE.
func (s *adminService) DeleteUser(ctx context.Context, userID int32) error {
	logger.EnterMethod("adminService.DeleteUser", "userID", userID)
	user, err := s.target(ctx, userID)
	if err != nil {
		return err
	}

	if user.UserType == domain.UserTypeTenant {
		renting, err := s.propertyRepo.ListByTenant(ctx, userID)
		if err != nil {
			return err
		}
		for i := range renting {
			p := &renting[i]
			p.Release()
			if err := s.propertyRepo.SetRentalState(ctx, p.ID, p.RentalState()); err != nil {
				logger.ExitMethodWithError("adminService.DeleteUser", err, "userID", userID, "propertyID", p.ID)
				return err
			}
		}
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.ExitMethodWithError("adminService.DeleteUser", err, "userID", userID)
		return err
	}
	if err := s.sessions.RevokeUser(ctx, userID); err != nil {
		logger.Warn("Failed to revoke sessions of deleted user", "userID", userID, "error", err)
	}
	logger.ExitMethod("adminService.DeleteUser", "userID", userID)
	return nil
}
