package service

import (
	"context"
	"errors"
	"fmt"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
	"rentease-backend/internal/utils"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	paymentRepo  repository.PaymentRepository
	noteRepo     repository.NotificationRepository
	notifier     NotificationService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NotificationRepository,
	notifier NotificationService,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		noteRepo:     noteRepo,
		notifier:     notifier,
	}
}

func (s *bookingService) GetBookingForm(ctx context.Context, tenantID, propertyID int32) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsVerified {
		return nil, domain.NewNotFoundError("property %d not found", propertyID)
	}
	return property, nil
}

// resolveOwner loads the owner of a property. A property pointing at a
// missing owner is a data integrity problem, not a user error.
func (s *bookingService) resolveOwner(ctx context.Context, property *domain.Property) (*domain.User, error) {
	owner, err := s.userRepo.GetByID(ctx, property.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.DataIntegrity("Property references a missing owner", "propertyID", property.ID, "ownerID", property.OwnerID)
			return nil, domain.NewNotFoundError("owner of property %d not found", property.ID)
		}
		return nil, err
	}
	return owner, nil
}

func (s *bookingService) RequestBooking(ctx context.Context, tenantID, propertyID int32, startDate string, leaseMonths int, comments string) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.RequestBooking", "tenantID", tenantID, "propertyID", propertyID, "startDate", startDate)

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, domain.NewValidationError("start date: %s", err.Error())
	}
	if leaseMonths <= 0 {
		return nil, domain.NewValidationError("lease duration must be at least one month")
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsVerified {
		return nil, domain.NewNotFoundError("property %d not found", propertyID)
	}
	owner, err := s.resolveOwner(ctx, property)
	if err != nil {
		logger.ExitMethodWithError("bookingService.RequestBooking", err, "propertyID", propertyID)
		return nil, err
	}
	tenant, err := s.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if property.IsRented {
		return nil, domain.NewConflictError("property is already rented")
	}
	pending, err := s.bookingRepo.HasPending(ctx, tenantID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending bookings: %w", err)
	}
	if pending {
		return nil, domain.NewConflictError("you already have a pending booking for this property")
	}

	booking := &domain.Booking{
		TenantID:    tenantID,
		PropertyID:  propertyID,
		OwnerID:     owner.ID,
		Status:      domain.BookingStatusPending,
		StartDate:   start,
		EndDate:     domain.LeaseEnd(start, leaseMonths),
		LeaseMonths: leaseMonths,
		Comments:    comments,
	}

	err = newSaga("request-booking").
		step("create booking",
			func(ctx context.Context) error { return s.bookingRepo.Create(ctx, booking) },
			func(ctx context.Context) error { return s.bookingRepo.Delete(ctx, booking.ID) }).
		step("notify owner",
			func(ctx context.Context) error {
				return s.notifier.Notify(ctx, &domain.Notification{
					Recipient: owner.Recipient(),
					Type:      domain.NotificationBookingRequest,
					Title:     "New Booking Request",
					Message:   fmt.Sprintf("New booking request for %s by %s", property.Title, tenant.Name),
					Status:    domain.NotificationStatusPending,
					BookingID: &booking.ID,
					Attributes: map[string]string{
						"property_id": fmt.Sprintf("%d", property.ID),
						"tenant_id":   fmt.Sprintf("%d", tenant.ID),
					},
				})
			}, nil).
		run(ctx)
	if err != nil {
		logger.ExitMethodWithError("bookingService.RequestBooking", err, "tenantID", tenantID, "propertyID", propertyID)
		return nil, err
	}

	logger.ExitMethod("bookingService.RequestBooking", "bookingID", booking.ID)
	return booking, nil
}

func (s *bookingService) ResolveBookingNotification(ctx context.Context, ownerID, notificationID int32, action domain.BookingAction, reason string) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.ResolveBookingNotification", "ownerID", ownerID, "notificationID", notificationID, "action", action)

	if action != domain.BookingActionApprove && action != domain.BookingActionReject {
		return nil, domain.NewValidationError("invalid action %q", action)
	}

	note, err := s.noteRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if !note.Recipient.Is(domain.UserTypeOwner, ownerID) {
		return nil, domain.NewAuthorizationError("not authorized to act on this notification")
	}
	if note.BookingID == nil {
		return nil, domain.NewValidationError("notification is not linked to a booking")
	}

	booking, property, tenant, err := s.loadPending(ctx, *note.BookingID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ResolveBookingNotification", err, "notificationID", notificationID)
		return nil, err
	}

	if action == domain.BookingActionApprove {
		err = s.approve(ctx, booking, property, tenant, note, nil)
	} else {
		err = s.reject(ctx, booking, property, tenant, note, domain.BookingStatusTerminated, reason)
	}
	if err != nil {
		logger.ExitMethodWithError("bookingService.ResolveBookingNotification", err, "bookingID", booking.ID)
		return nil, err
	}

	logger.ExitMethod("bookingService.ResolveBookingNotification", "bookingID", booking.ID, "status", booking.Status)
	return booking, nil
}

func (s *bookingService) AdminApproveBooking(ctx context.Context, bookingID int32) (*domain.Booking, *domain.Payment, error) {
	booking, property, tenant, err := s.loadPending(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	payment := &domain.Payment{
		TenantID:    booking.TenantID,
		PropertyID:  booking.PropertyID,
		BookingID:   &booking.ID,
		AmountCents: property.PriceCents,
		DueDate:     booking.StartDate,
		Status:      domain.PaymentStatusPending,
	}
	if err := s.approve(ctx, booking, property, tenant, nil, payment); err != nil {
		return nil, nil, err
	}
	return booking, payment, nil
}

func (s *bookingService) AdminRejectBooking(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error) {
	booking, property, tenant, err := s.loadPending(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.reject(ctx, booking, property, tenant, nil, domain.BookingStatusRejected, reason); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) loadPending(ctx context.Context, bookingID int32) (*domain.Booking, *domain.Property, *domain.User, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, nil, err
	}
	property, err := s.propertyRepo.GetByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, nil, nil, err
	}
	tenant, err := s.userRepo.GetByID(ctx, booking.TenantID)
	if err != nil {
		return nil, nil, nil, err
	}
	if booking.Status.Final() {
		return nil, nil, nil, domain.NewConflictError("booking has already been %s", booking.Status)
	}
	return booking, property, tenant, nil
}

// approve activates the booking and rents the property to its tenant. note is
// the owner's request notification, nil for admin moderation. payment, when
// set, is recorded as the first rent due.
func (s *bookingService) approve(ctx context.Context, booking *domain.Booking, property *domain.Property, tenant *domain.User, note *domain.Notification, payment *domain.Payment) error {
	if property.HeldByOther(booking.TenantID) {
		return domain.NewConflictError("property is already rented by another tenant")
	}

	before := property.RentalState()
	history := &domain.RentalHistory{
		TenantID:   booking.TenantID,
		PropertyID: property.ID,
		BookingID:  booking.ID,
		StartedOn:  booking.StartDate,
	}

	sg := newSaga("approve-booking").
		step("activate booking",
			func(ctx context.Context) error {
				return s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusPending, domain.BookingStatusActive)
			},
			func(ctx context.Context) error {
				return s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusActive, domain.BookingStatusPending)
			}).
		step("rent property",
			func(ctx context.Context) error {
				property.RentTo(booking.TenantID)
				return s.propertyRepo.SetRentalState(ctx, property.ID, property.RentalState())
			},
			func(ctx context.Context) error {
				property.SetRentalState(before)
				return s.propertyRepo.SetRentalState(ctx, property.ID, before)
			}).
		step("record rental history",
			func(ctx context.Context) error { return s.userRepo.AddRentalHistory(ctx, history) },
			func(ctx context.Context) error { return s.userRepo.DeleteRentalHistory(ctx, history.ID) })

	if note != nil {
		sg.step("approve owner notification",
			func(ctx context.Context) error {
				return s.noteRepo.UpdateStatus(ctx, note.ID, domain.NotificationStatusPending, domain.NotificationStatusApproved)
			},
			func(ctx context.Context) error {
				return s.noteRepo.UpdateStatus(ctx, note.ID, domain.NotificationStatusApproved, domain.NotificationStatusPending)
			})
	}
	if payment != nil {
		sg.step("create rent payment",
			func(ctx context.Context) error { return s.paymentRepo.Create(ctx, payment) },
			func(ctx context.Context) error { return s.paymentRepo.Delete(ctx, payment.ID) })
	}

	sg.step("notify tenant",
		func(ctx context.Context) error {
			return s.notifier.Notify(ctx, &domain.Notification{
				Recipient: tenant.Recipient(),
				Type:      domain.NotificationBookingApproved,
				Title:     "Booking Approved",
				Message:   fmt.Sprintf("Your booking for %s has been approved", property.Title),
				Status:    domain.NotificationStatusInfo,
				BookingID: &booking.ID,
			})
		}, nil)

	if err := sg.run(ctx); err != nil {
		return err
	}
	booking.Status = domain.BookingStatusActive
	return nil
}

// reject closes the booking with status and releases the property unless
// another tenant holds it.
func (s *bookingService) reject(ctx context.Context, booking *domain.Booking, property *domain.Property, tenant *domain.User, note *domain.Notification, status domain.BookingStatus, reason string) error {
	if reason == "" {
		reason = "N/A"
	}
	before := property.RentalState()

	sg := newSaga("reject-booking").
		step("close booking",
			func(ctx context.Context) error {
				return s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusPending, status)
			},
			func(ctx context.Context) error {
				return s.bookingRepo.UpdateStatus(ctx, booking.ID, status, domain.BookingStatusPending)
			})

	if !property.HeldByOther(booking.TenantID) {
		sg.step("release property",
			func(ctx context.Context) error {
				property.Release()
				return s.propertyRepo.SetRentalState(ctx, property.ID, property.RentalState())
			},
			func(ctx context.Context) error {
				property.SetRentalState(before)
				return s.propertyRepo.SetRentalState(ctx, property.ID, before)
			})
	}
	if note != nil {
		sg.step("reject owner notification",
			func(ctx context.Context) error {
				return s.noteRepo.UpdateStatus(ctx, note.ID, domain.NotificationStatusPending, domain.NotificationStatusRejected)
			},
			func(ctx context.Context) error {
				return s.noteRepo.UpdateStatus(ctx, note.ID, domain.NotificationStatusRejected, domain.NotificationStatusPending)
			})
	}

	sg.step("notify tenant",
		func(ctx context.Context) error {
			return s.notifier.Notify(ctx, &domain.Notification{
				Recipient:  tenant.Recipient(),
				Type:       domain.NotificationBookingRejected,
				Title:      "Booking Rejected",
				Message:    fmt.Sprintf("Your booking for %s was rejected. Reason: %s", property.Title, reason),
				Status:     domain.NotificationStatusInfo,
				BookingID:  &booking.ID,
				Attributes: map[string]string{"reason": reason},
			})
		}, nil)

	if err := sg.run(ctx); err != nil {
		return err
	}
	booking.Status = status
	return nil
}

func (s *bookingService) ListTenantBookings(ctx context.Context, tenantID int32) ([]domain.Booking, error) {
	return s.bookingRepo.ListByTenant(ctx, tenantID)
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID, status)
}
