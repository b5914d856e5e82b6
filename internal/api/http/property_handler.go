package http

import (
	"net/http"

	"rentease-backend/internal/domain"
)

type propertyRequest struct {
	Title       string `json:"title"`
	Address     string `json:"address"`
	Description string `json:"description"`
	PriceCents  int32  `json:"priceCents"`
}

func (req propertyRequest) toDomain() *domain.Property {
	return &domain.Property{
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	}
}

// SearchProperties lists verified properties that are not rented.
// Query: maxPriceCents, page, pageSize.
func (h *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	maxPrice, err := queryInt32(r, "maxPriceCents")
	if err != nil {
		fail(w, r, err)
		return
	}
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
	props, total, err := h.svc.Property.SearchProperties(r.Context(), maxPrice, page, pageSize)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"properties": props, "total": total})
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	p, err := h.svc.Property.GetProperty(r.Context(), viewerID(r.Context()), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "", envelope{"property": p})
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	p := req.toDomain()
	if err := h.svc.Property.ListProperty(r.Context(), claims.UserID, p); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Property submitted for verification", envelope{"property": p})
}

func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	update := req.toDomain()
	update.ID = id
	p, err := h.svc.Property.UpdateProperty(r.Context(), claims.UserID, update)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Property updated", envelope{"property": p})
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := h.svc.Property.DeleteProperty(r.Context(), claims.UserID, id); err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Property deleted", nil)
}

type verifyRequest struct {
	Approve bool `json:"approve"`
}

func (h *Handler) VerifyProperty(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	p, err := h.svc.Property.VerifyProperty(r.Context(), claims.UserID, id, req.Approve)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Property "+string(p.Status), envelope{"property": p})
}

type propertyRefRequest struct {
	PropertyID int32 `json:"propertyId"`
}

func (h *Handler) ToggleSavedProperty(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req propertyRefRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	saved, err := h.svc.Review.ToggleSavedProperty(r.Context(), claims.UserID, req.PropertyID)
	if err != nil {
		fail(w, r, err)
		return
	}
	message := "Property removed from saved list"
	if saved {
		message = "Property saved"
	}
	respond(w, http.StatusOK, message, envelope{"saved": saved})
}

type reviewRequest struct {
	PropertyID int32  `json:"propertyId"`
	Score      int32  `json:"score"`
	Comment    string `json:"comment"`
}

func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	rating, err := h.svc.Review.SubmitReview(r.Context(), claims.UserID, req.PropertyID, req.Score, req.Comment)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Review submitted", envelope{"rating": rating})
}
