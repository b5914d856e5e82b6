package http

import (
	"net/http"

	"rentease-backend/internal/domain"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	d, err := h.svc.Dashboard.GetDashboard(r.Context(), claims.UserID, domain.UserType(claims.UserType))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"dashboard": d})
}

// DeleteAccount removes the caller's account and ends the session.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	if err := h.svc.Account.DeleteAccount(r.Context(), claims.UserID, domain.UserType(claims.UserType)); err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.Auth.Logout(r.Context(), claims); err != nil {
		fail(w, r, err)
		return
	}
	h.clearSessionCookie(w)
	respond(w, http.StatusOK, "Account deleted", nil)
}

type maintenanceRequest struct {
	PropertyID  int32  `json:"propertyId"`
	Description string `json:"description"`
}

type complaintRequest struct {
	PropertyID  int32  `json:"propertyId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type maintenanceStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SubmitMaintenance(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	m, err := h.svc.Maintenance.SubmitRequest(r.Context(), claims.UserID, req.PropertyID, req.Description)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Maintenance request submitted", envelope{"maintenanceRequest": m})
}

func (h *Handler) UpdateMaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req maintenanceStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	m, err := h.svc.Maintenance.UpdateStatus(r.Context(), claims.UserID, id, domain.MaintenanceStatus(req.Status))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Maintenance request updated", envelope{"maintenanceRequest": m})
}

func (h *Handler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req complaintRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	c, err := h.svc.Maintenance.SubmitComplaint(r.Context(), claims.UserID, req.PropertyID, req.Subject, req.Description)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Complaint submitted", envelope{"complaint": c})
}

type profileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) UpdateAccountProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	user, err := h.svc.Account.UpdateProfile(r.Context(), claims.UserID, req.Name, req.Phone, req.Address)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Profile updated successfully", envelope{"user": user})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req passwordRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.Auth.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Password changed successfully", nil)
}
