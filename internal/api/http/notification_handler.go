package http

import (
	"net/http"
)

// ListNotifications returns the caller's inbox, newest first.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	page, err := queryInt32(r, "page")
	if err != nil {
		fail(w, r, err)
		return
	}
	pageSize, err := queryInt32(r, "pageSize")
	if err != nil {
		fail(w, r, err)
		return
	}
	notes, total, err := h.svc.Notification.ListForRecipient(r.Context(), recipientOf(claims), page, pageSize)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"notifications": notes, "total": total})
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.Notification.MarkRead(r.Context(), id, recipientOf(claims)); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Notification marked as read", nil)
}

func (h *Handler) MarkNotificationComplete(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.Notification.MarkComplete(r.Context(), id, recipientOf(claims)); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Notification completed", nil)
}
