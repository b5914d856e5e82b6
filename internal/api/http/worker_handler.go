package http

import (
	"net/http"
	"strings"

	"rentease-backend/internal/domain"
)

type workerBookRequest struct {
	ServiceType string `json:"serviceType"`
}

type workerStatusRequest struct {
	Status string `json:"status"`
}

type workerProfileRequest struct {
	ServiceType     string `json:"serviceType"`
	PriceCents      int32  `json:"priceCents"`
	RateUnit        string `json:"rateUnit"`
	ExperienceYears int32  `json:"experienceYears"`
	Location        string `json:"location"`
	Description     string `json:"description"`
}

type workerPaymentRequest struct {
	AmountCents   int32  `json:"amountCents"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *Handler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workers, err := h.svc.Worker.ListAvailable(r.Context(), q.Get("serviceType"), q.Get("location"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"workers": workers})
}

func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	worker, err := h.svc.Worker.GetWorker(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"worker": worker})
}

func (h *Handler) UpdateWorkerProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req workerProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	worker, err := h.svc.Worker.UpdateProfile(r.Context(), &domain.Worker{
		ID:              claims.UserID,
		ServiceType:     req.ServiceType,
		PriceCents:      req.PriceCents,
		RateUnit:        domain.RateUnit(req.RateUnit),
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Description:     req.Description,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Profile updated", envelope{"worker": worker})
}

func (h *Handler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	status, err := h.svc.Worker.ToggleAvailability(r.Context(), claims.UserID)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Availability updated", envelope{"serviceStatus": status})
}

func (h *Handler) RequestWorker(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	workerID, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req workerBookRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	b, err := h.svc.WorkerBooking.RequestWorker(r.Context(), claims.UserID, workerID, req.ServiceType)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Booking request sent to the worker", envelope{"workerBooking": b})
}

func (h *Handler) ResolveWorkerBooking(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	bookingID, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req workerStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	b, err := h.svc.WorkerBooking.ResolveWorkerBooking(r.Context(), bookingID, claims.UserID, domain.WorkerBookingStatus(strings.ToUpper(strings.TrimSpace(req.Status))))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Booking "+string(b.Status), envelope{"workerBooking": b})
}

func (h *Handler) DebookWorker(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	workerID, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.WorkerBooking.DebookWorker(r.Context(), claims.UserID, workerID); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Worker debooked", nil)
}

// ListWorkerBookings returns the signed-in worker's bookings and clients.
func (h *Handler) ListWorkerBookings(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	bookings, err := h.svc.WorkerBooking.ListWorkerBookings(r.Context(), claims.UserID)
	if err != nil {
		fail(w, r, err)
		return
	}
	clients, err := h.svc.WorkerBooking.ListWorkerClients(r.Context(), claims.UserID)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"bookings": bookings, "clients": clients})
}

func (h *Handler) PayWorker(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	workerID, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req workerPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	p, err := h.svc.Payment.PayWorker(r.Context(), claims.UserID, workerID, req.AmountCents, req.PaymentMethod)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Payment recorded", envelope{"payment": p})
}
