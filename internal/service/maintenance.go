package service

import (
	"context"
	"fmt"
	"strings"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	propertyRepo    repository.PropertyRepository
	notifier        NotificationService
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, propertyRepo repository.PropertyRepository, notifier NotificationService) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		notifier:        notifier,
	}
}

// currentTenancy loads the property and checks tenantID is renting it.
func (s *maintenanceService) currentTenancy(ctx context.Context, tenantID, propertyID int32) (*domain.Property, error) {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !p.IsRented || p.TenantID == nil || *p.TenantID != tenantID {
		return nil, domain.NewAuthorizationError("you are not the current tenant of this property")
	}
	return p, nil
}

func (s *maintenanceService) SubmitRequest(ctx context.Context, tenantID, propertyID int32, description string) (*domain.MaintenanceRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.NewValidationError("description is required")
	}
	p, err := s.currentTenancy(ctx, tenantID, propertyID)
	if err != nil {
		return nil, err
	}

	req := &domain.MaintenanceRequest{
		TenantID:    tenantID,
		PropertyID:  propertyID,
		OwnerID:     p.OwnerID,
		Description: description,
		Status:      domain.MaintenanceStatusPending,
	}
	if err := s.maintenanceRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	err = s.notifier.Notify(ctx, &domain.Notification{
		Recipient:  domain.Recipient{Type: domain.RecipientOwner, ID: p.OwnerID},
		Type:       domain.NotificationMaintenanceRequest,
		Title:      "New Maintenance Request",
		Message:    fmt.Sprintf("New maintenance request for %s: %s", p.Title, description),
		Status:     domain.NotificationStatusInfo,
		Attributes: map[string]string{"maintenance_request_id": fmt.Sprintf("%d", req.ID)},
	})
	if err != nil {
		logger.Warn("Failed to notify owner of maintenance request", "maintenanceRequestID", req.ID, "error", err)
	}
	return req, nil
}

func (s *maintenanceService) UpdateStatus(ctx context.Context, ownerID, requestID int32, status domain.MaintenanceStatus) (*domain.MaintenanceRequest, error) {
	switch status {
	case domain.MaintenanceStatusInProgress, domain.MaintenanceStatusCompleted, domain.MaintenanceStatusResolved:
	default:
		return nil, domain.NewValidationError("invalid status %q", status)
	}

	req, err := s.maintenanceRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != ownerID {
		return nil, domain.NewAuthorizationError("not authorized to update this request")
	}
	return s.transition(ctx, req, status)
}

// AdminComplete closes any request on behalf of the owner.
func (s *maintenanceService) AdminComplete(ctx context.Context, requestID int32) (*domain.MaintenanceRequest, error) {
	req, err := s.maintenanceRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	logger.Info("Admin completing maintenance request", "maintenanceRequestID", requestID, "from", req.Status)
	return s.transition(ctx, req, domain.MaintenanceStatusCompleted)
}

// transition moves req to status and tells the tenant. Repeating the current
// status is a no-op.
func (s *maintenanceService) transition(ctx context.Context, req *domain.MaintenanceRequest, status domain.MaintenanceStatus) (*domain.MaintenanceRequest, error) {
	if req.Status == status {
		return req, nil
	}
	if err := s.maintenanceRepo.UpdateStatus(ctx, req.ID, status); err != nil {
		return nil, err
	}
	req.Status = status

	err := s.notifier.Notify(ctx, &domain.Notification{
		Recipient:  domain.Recipient{Type: domain.RecipientTenant, ID: req.TenantID},
		Type:       domain.NotificationMaintenanceUpdate,
		Title:      "Maintenance Update",
		Message:    fmt.Sprintf("Your maintenance request is now %s", strings.ReplaceAll(strings.ToLower(string(status)), "_", " ")),
		Status:     domain.NotificationStatusInfo,
		Attributes: map[string]string{"maintenance_request_id": fmt.Sprintf("%d", req.ID)},
	})
	if err != nil {
		logger.Warn("Failed to notify tenant of maintenance update", "maintenanceRequestID", req.ID, "error", err)
	}
	return req, nil
}

func (s *maintenanceService) SubmitComplaint(ctx context.Context, tenantID, propertyID int32, subject, description string) (*domain.Complaint, error) {
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)
	if subject == "" || description == "" {
		return nil, domain.NewValidationError("subject and description are required")
	}
	if _, err := s.currentTenancy(ctx, tenantID, propertyID); err != nil {
		return nil, err
	}
	c := &domain.Complaint{
		TenantID:    tenantID,
		PropertyID:  propertyID,
		Subject:     subject,
		Description: description,
		Status:      domain.ComplaintStatusOpen,
	}
	if err := s.maintenanceRepo.CreateComplaint(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
