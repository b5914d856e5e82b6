package http

import (
	"net/http"

	"rentease-backend/internal/domain"
)

const defaultLeaseMonths = 6

type bookingRequest struct {
	PropertyID    int32  `json:"propertyId"`
	StartDate     string `json:"startDate"`
	LeaseDuration int    `json:"leaseDuration"`
	Comments      string `json:"comments"`
}

type notificationActionRequest struct {
	NotificationID int32  `json:"notificationId"`
	Action         string `json:"action"`
	Reason         string `json:"reason"`
}

// GetBookingForm returns the property summary shown on the booking form.
func (h *Handler) GetBookingForm(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	propertyID, err := parseID(r.URL.Query().Get("propertyId"), "propertyId")
	if err != nil {
		fail(w, r, err)
		return
	}
	p, err := h.svc.Booking.GetBookingForm(r.Context(), claims.UserID, propertyID)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"property": p})
}

func (h *Handler) RequestBooking(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.PropertyID <= 0 {
		fail(w, r, domain.NewValidationError("propertyId is required"))
		return
	}
	if req.LeaseDuration == 0 {
		req.LeaseDuration = defaultLeaseMonths
	}

	b, err := h.svc.Booking.RequestBooking(r.Context(), claims.UserID, req.PropertyID, req.StartDate, req.LeaseDuration, req.Comments)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Booking request sent to the owner", envelope{"booking": b})
}

func (h *Handler) ResolveBookingNotification(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req notificationActionRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.NotificationID <= 0 {
		fail(w, r, domain.NewValidationError("notificationId is required"))
		return
	}

	action := domain.BookingAction(req.Action)
	b, err := h.svc.Booking.ResolveBookingNotification(r.Context(), claims.UserID, req.NotificationID, action, req.Reason)
	if err != nil {
		fail(w, r, err)
		return
	}
	message := "Booking approved"
	if action == domain.BookingActionReject {
		message = "Booking rejected"
	}
	respond(w, http.StatusOK, message, envelope{"booking": b})
}

// ListBookings returns the tenant's bookings, or the owner's bookings
// filtered by ?status=.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var (
		bookings []domain.Booking
		err      error
	)
	switch domain.UserType(claims.UserType) {
	case domain.UserTypeTenant:
		bookings, err = h.svc.Booking.ListTenantBookings(r.Context(), claims.UserID)
	case domain.UserTypeOwner:
		status := domain.BookingStatus(r.URL.Query().Get("status"))
		bookings, err = h.svc.Booking.ListOwnerBookings(r.Context(), claims.UserID, status)
	default:
		err = domain.NewAuthorizationError("only tenants and owners have bookings")
	}
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"bookings": bookings})
}

func (h *Handler) AdminApproveBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	b, p, err := h.svc.Booking.AdminApproveBooking(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Booking approved", envelope{"booking": b, "payment": p})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) AdminRejectBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req rejectRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			fail(w, r, err)
			return
		}
	}
	b, err := h.svc.Booking.AdminRejectBooking(r.Context(), id, req.Reason)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Booking rejected", envelope{"booking": b})
}
