package service

import (
	"context"
	"fmt"
	"strings"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	notifier     NotificationService
}

func NewPropertyService(propertyRepo repository.PropertyRepository, notifier NotificationService) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, notifier: notifier}
}

func validateListing(p *domain.Property) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Address = strings.TrimSpace(p.Address)
	if p.Title == "" {
		return domain.NewValidationError("title is required")
	}
	if p.Address == "" {
		return domain.NewValidationError("address is required")
	}
	if p.PriceCents <= 0 {
		return domain.NewValidationError("price must be greater than zero")
	}
	return nil
}

// ListProperty creates a listing awaiting admin verification.
func (s *propertyService) ListProperty(ctx context.Context, ownerID int32, p *domain.Property) error {
	if err := validateListing(p); err != nil {
		return err
	}
	p.OwnerID = ownerID
	p.TenantID = nil
	p.Status = domain.PropertyStatusPending
	p.IsRented = false
	p.IsVerified = false
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info("Property listed", "propertyID", p.ID, "ownerID", ownerID)
	return nil
}

// GetProperty hides unverified listings from everyone except their owner.
func (s *propertyService) GetProperty(ctx context.Context, viewerID, propertyID int32) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !p.IsVerified && p.OwnerID != viewerID {
		return nil, domain.NewNotFoundError("property not found")
	}
	return p, nil
}

func (s *propertyService) owned(ctx context.Context, ownerID, propertyID int32) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, domain.NewAuthorizationError("you do not own this property")
	}
	return p, nil
}

// UpdateProperty changes the descriptive fields only. Rental state and
// verification are managed by the booking and moderation workflows.
func (s *propertyService) UpdateProperty(ctx context.Context, ownerID int32, update *domain.Property) (*domain.Property, error) {
	p, err := s.owned(ctx, ownerID, update.ID)
	if err != nil {
		return nil, err
	}
	if err := validateListing(update); err != nil {
		return nil, err
	}
	p.Title = update.Title
	p.Address = update.Address
	p.Description = update.Description
	p.PriceCents = update.PriceCents
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, ownerID, propertyID int32) error {
	p, err := s.owned(ctx, ownerID, propertyID)
	if err != nil {
		return err
	}
	if p.IsRented {
		return domain.NewConflictError("cannot delete a rented property")
	}
	return s.propertyRepo.Delete(ctx, propertyID)
}

func (s *propertyService) SearchProperties(ctx context.Context, maxPriceCents int32, page, pageSize int32) ([]domain.Property, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return s.propertyRepo.Search(ctx, maxPriceCents, page, pageSize)
}

func (s *propertyService) ListOwnerProperties(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	return s.propertyRepo.ListByOwner(ctx, ownerID)
}

func (s *propertyService) VerifyProperty(ctx context.Context, adminID, propertyID int32, approve bool) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.IsRented {
		return nil, domain.NewConflictError("property is rented")
	}

	outcome := "rejected"
	if approve {
		p.Status = domain.PropertyStatusActive
		p.IsVerified = true
		outcome = "approved"
	} else {
		p.Status = domain.PropertyStatusRejected
		p.IsVerified = false
	}
	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	logger.Info("Property verification", "propertyID", p.ID, "adminID", adminID, "outcome", outcome)

	err = s.notifier.Notify(ctx, &domain.Notification{
		Recipient:  domain.Recipient{Type: domain.RecipientOwner, ID: p.OwnerID},
		Type:       domain.NotificationPropertyVerification,
		Title:      "Property Verification",
		Message:    fmt.Sprintf("Your listing %s has been %s", p.Title, outcome),
		Status:     domain.NotificationStatusInfo,
		Attributes: map[string]string{"property_id": fmt.Sprintf("%d", p.ID)},
	})
	if err != nil {
		logger.Warn("Failed to notify owner of verification", "propertyID", p.ID, "error", err)
	}
	return p, nil
}
