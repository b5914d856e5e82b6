package http

import (
	"net/http"
	"strings"

	"rentease-backend/internal/domain"
)

type userStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	p, err := h.svc.Payment.RefundPayment(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Payment refunded", envelope{"payment": p})
}

func (h *Handler) RetryWorkerPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	p, err := h.svc.Payment.RetryWorkerPayment(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Payment queued for retry", envelope{"payment": p})
}

// SetUserStatus accepts "Active" or "Suspended" in any case.
func (h *Handler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req userStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	status := domain.UserStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	user, err := h.svc.Admin.SetUserStatus(r.Context(), id, status)
	if err != nil {
		fail(w, r, err)
		return
	}
	message := "User activated successfully"
	if user.Status == domain.UserStatusSuspended {
		message = "User suspended successfully"
	}
	respond(w, http.StatusOK, message, envelope{"user": user})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.Admin.DeleteUser(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "User deleted successfully", nil)
}

func (h *Handler) AdminCompleteMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	m, err := h.svc.Maintenance.AdminComplete(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Maintenance request completed", envelope{"maintenanceRequest": m})
}
