package service

import (
	"context"
	"errors"
	"fmt"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type notificationService struct {
	noteRepo    repository.NotificationRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	emailSvc    EmailService
	publisher   EventPublisher
}

// NewNotificationService wires the inbox. publisher may be nil when no broker
// is configured; RelayPending then fails.
func NewNotificationService(
	noteRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	emailSvc EmailService,
	publisher EventPublisher,
) NotificationService {
	return &notificationService{
		noteRepo:    noteRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		emailSvc:    emailSvc,
		publisher:   publisher,
	}
}

func (s *notificationService) Notify(ctx context.Context, note *domain.Notification) error {
	if note.Status == "" {
		note.Status = domain.NotificationStatusInfo
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.sendEmail(ctx, note)
	return nil
}

// sendEmail is best effort. Failures are logged only.
func (s *notificationService) sendEmail(ctx context.Context, note *domain.Notification) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, note.Recipient.ID)
	if err != nil {
		logger.Warn("Notification recipient lookup failed, email skipped", "notificationID", note.ID, "recipientID", note.Recipient.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendNotificationEmail(ctx, user.Email, user.Name, note.Title, note.Message); err != nil {
		logger.Warn("Notification email failed", "notificationID", note.ID, "recipientID", note.Recipient.ID, "error", err)
	}
}

func (s *notificationService) ListForRecipient(ctx context.Context, recipient domain.Recipient, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, recipient, pageSize, offset)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID int32, recipient domain.Recipient) error {
	note, err := s.noteRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if note.Recipient != recipient {
		return domain.NewAuthorizationError("not authorized to read this notification")
	}
	if note.IsRead {
		return nil
	}
	return s.noteRepo.MarkAsRead(ctx, notificationID, recipient)
}

func (s *notificationService) MarkComplete(ctx context.Context, notificationID int32, actor domain.Recipient) error {
	note, err := s.noteRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	isAdmin := actor.Type == domain.RecipientAdmin
	isOwner := actor.Type == domain.RecipientOwner && note.Recipient == actor
	if !isAdmin && !isOwner {
		return domain.NewAuthorizationError("not authorized to complete this notification")
	}
	if note.Status != domain.NotificationStatusPending {
		return domain.NewConflictError("notification is %s, only pending notifications can be completed", note.Status)
	}
	if note.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *note.BookingID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if booking != nil && booking.Status == domain.BookingStatusPending {
			return domain.NewConflictError("resolve the booking request before completing it")
		}
	}
	return s.noteRepo.UpdateStatus(ctx, notificationID, domain.NotificationStatusPending, domain.NotificationStatusCompleted)
}

func (s *notificationService) CountUnread(ctx context.Context, recipient domain.Recipient) (int32, error) {
	return s.noteRepo.CountUnread(ctx, recipient)
}

// RelayPending publishes up to batch unpublished notifications and returns how
// many were delivered. A publish failure stops the batch; the remaining rows
// are picked up by the next run.
func (s *notificationService) RelayPending(ctx context.Context, batch int) (int, error) {
	if s.publisher == nil {
		return 0, fmt.Errorf("no event publisher configured")
	}
	n, err := s.noteRepo.ClaimUnpublished(ctx, batch, func(note domain.Notification) error {
		return s.publisher.PublishNotification(ctx, &note)
	})
	if err != nil {
		return n, fmt.Errorf("failed to relay notifications: %w", err)
	}
	return n, nil
}
