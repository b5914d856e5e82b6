package http

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"rentease-backend/internal/metrics"
	"rentease-backend/internal/service"
)

// Services are the application services exposed over HTTP.
type Services struct {
	Auth          service.AuthService
	Property      service.PropertyService
	Booking       service.BookingService
	Worker        service.WorkerService
	WorkerBooking service.WorkerBookingService
	Notification  service.NotificationService
	Payment       service.PaymentService
	Maintenance   service.MaintenanceService
	Review        service.ReviewService
	Account       service.AccountService
	Dashboard     service.DashboardService
	Admin         service.AdminService
}

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	svc    Services
	cookie CookieConfig
}

func NewHandler(svc Services, cookie CookieConfig) *Handler {
	return &Handler{svc: svc, cookie: cookie}
}

// RouterOptions configures NewRouter. Metrics and Health are optional.
type RouterOptions struct {
	Sessions       SessionResolver
	Metrics        *metrics.Metrics
	Health         *HealthHandler
	AllowedOrigins []string
}

// NewRouter registers every route and wraps the router with CORS, proxy
// header handling and panic recovery.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.Use(Instrument(opts.Metrics), Authenticate(opts.Sessions, h.cookie.Name))

	if opts.Health != nil {
		router.HandleFunc("/health", opts.Health.Health).Methods(http.MethodGet)
		router.HandleFunc("/health/live", opts.Health.Live).Methods(http.MethodGet)
		router.HandleFunc("/health/ready", opts.Health.Ready).Methods(http.MethodGet)
	}
	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	// Auth
	router.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)

	// Properties
	router.HandleFunc("/api/properties", h.SearchProperties).Methods(http.MethodGet)
	router.HandleFunc("/api/properties", h.CreateProperty).Methods(http.MethodPost)
	router.HandleFunc("/api/properties/{id}", h.GetProperty).Methods(http.MethodGet)
	router.HandleFunc("/api/properties/{id}", h.UpdateProperty).Methods(http.MethodPut)
	router.HandleFunc("/api/properties/{id}", h.DeleteProperty).Methods(http.MethodDelete)

	// Booking workflow
	router.HandleFunc("/book-property", h.GetBookingForm).Methods(http.MethodGet)
	router.HandleFunc("/book-property", h.RequestBooking).Methods(http.MethodPost)
	router.HandleFunc("/notifications/action", h.ResolveBookingNotification).Methods(http.MethodPost)
	router.HandleFunc("/api/bookings", h.ListBookings).Methods(http.MethodGet)
	router.HandleFunc("/property/toggle-save", h.ToggleSavedProperty).Methods(http.MethodPost)
	router.HandleFunc("/review/submit", h.SubmitReview).Methods(http.MethodPost)
	router.HandleFunc("/maintenance/submit", h.SubmitMaintenance).Methods(http.MethodPost)
	router.HandleFunc("/complaint/submit", h.SubmitComplaint).Methods(http.MethodPost)
	router.HandleFunc("/api/maintenance/{id}/status", h.UpdateMaintenanceStatus).Methods(http.MethodPost)

	// Workers. Fixed paths are registered before /api/workers/{id}.
	router.HandleFunc("/api/workers", h.ListWorkers).Methods(http.MethodGet)
	router.HandleFunc("/api/workers/bookings", h.ListWorkerBookings).Methods(http.MethodGet)
	router.HandleFunc("/api/workers/profile", h.UpdateWorkerProfile).Methods(http.MethodPut)
	router.HandleFunc("/api/workers/availability/toggle", h.ToggleAvailability).Methods(http.MethodPost)
	router.HandleFunc("/api/workers/bookings/{id}/status", h.ResolveWorkerBooking).Methods(http.MethodPost)
	router.HandleFunc("/api/workers/{id}", h.GetWorker).Methods(http.MethodGet)
	router.HandleFunc("/api/workers/{id}/book", h.RequestWorker).Methods(http.MethodPost)
	router.HandleFunc("/api/workers/{id}/debook", h.DebookWorker).Methods(http.MethodPost)
	router.HandleFunc("/api/workers/{id}/payments", h.PayWorker).Methods(http.MethodPost)

	// Notifications
	router.HandleFunc("/api/notifications", h.ListNotifications).Methods(http.MethodGet)
	router.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPost)
	router.HandleFunc("/notifications/{id}/complete", h.MarkNotificationComplete).Methods(http.MethodPost)

	// Account
	router.HandleFunc("/api/dashboard", h.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/account", h.DeleteAccount).Methods(http.MethodDelete)
	router.HandleFunc("/api/account/profile", h.UpdateAccountProfile).Methods(http.MethodPut)
	router.HandleFunc("/api/account/password", h.ChangePassword).Methods(http.MethodPost)

	// Admin
	router.HandleFunc("/admin/properties/{id}/verify", h.VerifyProperty).Methods(http.MethodPost)
	router.HandleFunc("/admin/bookings/{id}/approve", h.AdminApproveBooking).Methods(http.MethodPost)
	router.HandleFunc("/admin/bookings/{id}/reject", h.AdminRejectBooking).Methods(http.MethodPost)
	router.HandleFunc("/admin/payments/{id}/refund", h.RefundPayment).Methods(http.MethodPost)
	router.HandleFunc("/admin/worker-payments/{id}/retry", h.RetryWorkerPayment).Methods(http.MethodPost)
	router.HandleFunc("/admin/maintenance/{id}/complete", h.AdminCompleteMaintenance).Methods(http.MethodPost)
	router.HandleFunc("/admin/users/{id}/status", h.SetUserStatus).Methods(http.MethodPost)
	router.HandleFunc("/admin/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	cors := handlers.CORS(
		handlers.AllowCredentials(),
		handlers.AllowedOrigins(opts.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "OPTIONS", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Cookie", "X-Requested-With", "Origin"}),
	)
	return Recover(handlers.ProxyHeaders(cors(router)))
}
