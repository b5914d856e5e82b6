package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rentease-backend/internal/config"
	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/metrics"
	"rentease-backend/internal/security"
)

// SessionResolver validates session cookies. *security.SessionManager
// satisfies it.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*security.SessionClaims, error)
}

// statusRecorder captures the response code for logging and metrics, and
// the session user once Authenticate has resolved it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	userID int32
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

// Recover turns panics into a 500 JSON response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fail(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Instrument logs each request and records it in m. m may be nil.
func Instrument(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			tpl := routeTemplate(r)
			if m != nil {
				m.ObserveRequest(tpl, r.Method, rec.status, elapsed)
			}
			logger.WithRequest(r.Method, r.URL.Path, rec.userID).
				Info("HTTP request", "route", tpl, "status", rec.status, "duration", elapsed)
		})
	}
}

// Authenticate resolves the session cookie and enforces the security level
// configured for the matched route. Public routes still receive the session
// when a valid cookie is present.
func Authenticate(sessions SessionResolver, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			level := config.GetSecurityLevel(r.Method, routeTemplate(r))

			var claims *security.SessionClaims
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				c, err := sessions.Resolve(r.Context(), cookie.Value)
				if err != nil {
					logger.Debug("Session rejected", "path", r.URL.Path, "error", err)
				} else {
					claims = c
				}
			}
			if rec, ok := w.(*statusRecorder); ok && claims != nil {
				rec.userID = claims.UserID
			}

			if level == config.SecurityPublic {
				if claims != nil {
					r = r.WithContext(withSession(r.Context(), claims))
				}
				next.ServeHTTP(w, r)
				return
			}

			if claims == nil {
				fail(w, r, domain.NewAuthenticationError("authentication required"))
				return
			}
			if required := level.RequiredUserType(); required != "" && claims.UserType != required {
				fail(w, r, domain.NewAuthorizationError("this action requires a %s account", required))
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims)))
		})
	}
}
