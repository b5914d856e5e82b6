package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/service"
)

func rentedProperty(tenantID int32) *domain.Property {
	p := &domain.Property{ID: 100, OwnerID: 10, Title: "Loft", IsVerified: true}
	p.RentTo(tenantID)
	return p
}

func TestMaintenanceService(t *testing.T) {
	ctx := context.Background()

	t.Run("Tenant submits a request", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		props := new(MockPropertyRepo)
		notifier := new(MockNotificationService)
		svc := service.NewMaintenanceService(maint, props, notifier)

		props.On("GetByID", ctx, int32(100)).Return(rentedProperty(1), nil)
		maint.On("Create", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)
		notifier.On("Notify", ctx, mock.Anything).Return(nil)

		req, err := svc.SubmitRequest(ctx, 1, 100, " Leaky tap ")
		require.NoError(t, err)
		assert.Equal(t, int32(10), req.OwnerID)
		assert.Equal(t, domain.MaintenanceStatusPending, req.Status)
		require.Len(t, notifier.Sent, 1)
		assert.Equal(t, "New maintenance request for Loft: Leaky tap", notifier.Sent[0].Message)
	})

	t.Run("Non-tenant is refused", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		props := new(MockPropertyRepo)
		svc := service.NewMaintenanceService(maint, props, new(MockNotificationService))
		props.On("GetByID", ctx, int32(100)).Return(rentedProperty(2), nil)

		_, err := svc.SubmitRequest(ctx, 1, 100, "Leaky tap")
		assert.ErrorIs(t, err, domain.ErrAuthorization)
		_, err = svc.SubmitComplaint(ctx, 1, 100, "Noise", "Loud neighbours")
		assert.ErrorIs(t, err, domain.ErrAuthorization)
		maint.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Owner updates status", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		notifier := new(MockNotificationService)
		svc := service.NewMaintenanceService(maint, new(MockPropertyRepo), notifier)

		maint.On("GetByID", ctx, int32(7)).Return(&domain.MaintenanceRequest{ID: 7, OwnerID: 10, TenantID: 1, Status: domain.MaintenanceStatusPending}, nil)
		maint.On("UpdateStatus", ctx, int32(7), domain.MaintenanceStatusInProgress).Return(nil)
		notifier.On("Notify", ctx, mock.Anything).Return(nil)

		req, err := svc.UpdateStatus(ctx, 10, 7, domain.MaintenanceStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusInProgress, req.Status)
		require.Len(t, notifier.Sent, 1)
		assert.Equal(t, "Your maintenance request is now in progress", notifier.Sent[0].Message)
	})

	t.Run("Status rules", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maint, new(MockPropertyRepo), new(MockNotificationService))
		maint.On("GetByID", ctx, int32(7)).Return(&domain.MaintenanceRequest{ID: 7, OwnerID: 10, Status: domain.MaintenanceStatusCompleted}, nil)

		_, err := svc.UpdateStatus(ctx, 10, 7, domain.MaintenanceStatusPending)
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.UpdateStatus(ctx, 11, 7, domain.MaintenanceStatusResolved)
		assert.ErrorIs(t, err, domain.ErrAuthorization)
		_, err = svc.UpdateStatus(ctx, 10, 7, domain.MaintenanceStatusCompleted)
		assert.NoError(t, err)
		maint.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin completes any request", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		notifier := new(MockNotificationService)
		svc := service.NewMaintenanceService(maint, new(MockPropertyRepo), notifier)

		maint.On("GetByID", ctx, int32(7)).Return(&domain.MaintenanceRequest{ID: 7, OwnerID: 10, TenantID: 1, Status: domain.MaintenanceStatusInProgress}, nil)
		maint.On("UpdateStatus", ctx, int32(7), domain.MaintenanceStatusCompleted).Return(nil)
		notifier.On("Notify", ctx, mock.Anything).Return(nil)

		req, err := svc.AdminComplete(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusCompleted, req.Status)
		require.Len(t, notifier.Sent, 1)
		assert.Equal(t, domain.Recipient{Type: domain.RecipientTenant, ID: 1}, notifier.Sent[0].Recipient)
		assert.Equal(t, "Your maintenance request is now completed", notifier.Sent[0].Message)
	})

	t.Run("Admin completion of a missing request", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maint, new(MockPropertyRepo), new(MockNotificationService))
		maint.On("GetByID", ctx, int32(8)).Return(nil, domain.NewNotFoundError("maintenance request not found"))

		_, err := svc.AdminComplete(ctx, 8)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Complaint", func(t *testing.T) {
		maint := new(MockMaintenanceRepo)
		props := new(MockPropertyRepo)
		svc := service.NewMaintenanceService(maint, props, new(MockNotificationService))
		props.On("GetByID", ctx, int32(100)).Return(rentedProperty(1), nil)
		maint.On("CreateComplaint", ctx, mock.AnythingOfType("*domain.Complaint")).Return(nil)

		c, err := svc.SubmitComplaint(ctx, 1, 100, "Noise", "Loud neighbours")
		require.NoError(t, err)
		assert.Equal(t, domain.ComplaintStatusOpen, c.Status)

		_, err = svc.SubmitComplaint(ctx, 1, 100, "", "x")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestReviewService(t *testing.T) {
	ctx := context.Background()

	t.Run("Submit updates the average", func(t *testing.T) {
		ratings := new(MockRatingRepo)
		props := new(MockPropertyRepo)
		users := new(MockUserRepo)
		svc := service.NewReviewService(ratings, props, users)

		props.On("GetByID", ctx, int32(100)).Return(&domain.Property{ID: 100}, nil)
		users.On("HasRented", ctx, int32(1), int32(100)).Return(true, nil)
		ratings.On("Upsert", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil)
		ratings.On("AverageForProperty", ctx, int32(100)).Return(4.5, nil)
		props.On("SetAverageRating", ctx, int32(100), 4.5).Return(nil)

		r, err := svc.SubmitReview(ctx, 1, 100, 5, " Great ")
		require.NoError(t, err)
		assert.Equal(t, "Great", r.Comment)
		props.AssertExpectations(t)
	})

	t.Run("Score out of range", func(t *testing.T) {
		svc := service.NewReviewService(new(MockRatingRepo), new(MockPropertyRepo), new(MockUserRepo))
		_, err := svc.SubmitReview(ctx, 1, 100, 0, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.SubmitReview(ctx, 1, 100, 6, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Never rented", func(t *testing.T) {
		ratings := new(MockRatingRepo)
		props := new(MockPropertyRepo)
		users := new(MockUserRepo)
		svc := service.NewReviewService(ratings, props, users)
		props.On("GetByID", ctx, int32(100)).Return(&domain.Property{ID: 100}, nil)
		users.On("HasRented", ctx, int32(1), int32(100)).Return(false, nil)

		_, err := svc.SubmitReview(ctx, 1, 100, 4, "")
		assert.ErrorIs(t, err, domain.ErrAuthorization)
		ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Toggle saved", func(t *testing.T) {
		props := new(MockPropertyRepo)
		svc := service.NewReviewService(new(MockRatingRepo), props, new(MockUserRepo))
		props.On("GetByID", ctx, int32(100)).Return(&domain.Property{ID: 100}, nil)
		props.On("ToggleSaved", ctx, int32(1), int32(100)).Return(true, nil)

		saved, err := svc.ToggleSavedProperty(ctx, 1, 100)
		require.NoError(t, err)
		assert.True(t, saved)
	})
}
