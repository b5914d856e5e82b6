package http

import (
	"net/http"

	"rentease-backend/internal/domain"
)

type registerRequest struct {
	UserType string `json:"userType"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	user, err := h.svc.Auth.Register(r.Context(), domain.UserType(req.UserType), req.Name, req.Email, req.Phone, req.Address, req.Password)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Registration successful", envelope{"user": user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	user, token, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		fail(w, r, err)
		return
	}
	h.setSessionCookie(w, token)
	respond(w, http.StatusOK, "Login successful", envelope{"user": user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, _ := SessionFromContext(r.Context())
	if err := h.svc.Auth.Logout(r.Context(), claims); err != nil {
		fail(w, r, err)
		return
	}
	h.clearSessionCookie(w)
	respond(w, http.StatusOK, "Logged out", nil)
}
