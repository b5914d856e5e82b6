// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic  SecurityLevel = iota // No session
	SecuritySession                      // Any signed-in user
	SecurityTenant                       // Tenant session
	SecurityOwner                        // Owner session
	SecurityWorker                       // Worker session
	SecurityAdmin                        // Admin session
)

// EndpointSecurityConfig maps "METHOD /route/template" to the required
// security level. Templates are the gorilla/mux path templates.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth - Public
	"POST /register": SecurityPublic,
	"POST /login":    SecurityPublic,

	// Auth - Session
	"POST /logout": SecuritySession,

	// Health and metrics - Public
	"GET /health":       SecurityPublic,
	"GET /health/ready": SecurityPublic,
	"GET /health/live":  SecurityPublic,
	"GET /metrics":      SecurityPublic,

	// Properties
	"GET /api/properties":         SecurityPublic,
	"GET /api/properties/{id}":    SecurityPublic,
	"POST /api/properties":        SecurityOwner,
	"PUT /api/properties/{id}":    SecurityOwner,
	"DELETE /api/properties/{id}": SecurityOwner,

	// Booking workflow
	"GET /book-property":                SecurityTenant,
	"POST /book-property":               SecurityTenant,
	"POST /notifications/action":        SecurityOwner,
	"GET /api/bookings":                 SecuritySession,
	"POST /property/toggle-save":        SecurityTenant,
	"POST /review/submit":               SecurityTenant,
	"POST /maintenance/submit":          SecurityTenant,
	"POST /complaint/submit":            SecurityTenant,
	"POST /api/maintenance/{id}/status": SecurityOwner,

	// Workers
	"GET /api/workers":                       SecurityPublic,
	"GET /api/workers/bookings":              SecurityWorker,
	"GET /api/workers/{id}":                  SecurityPublic,
	"PUT /api/workers/profile":               SecurityWorker,
	"POST /api/workers/availability/toggle":  SecurityWorker,
	"POST /api/workers/{id}/book":            SecurityTenant,
	"POST /api/workers/bookings/{id}/status": SecurityWorker,
	"POST /api/workers/{id}/debook":          SecurityTenant,
	"POST /api/workers/{id}/payments":        SecurityTenant,

	// Notifications
	"GET /api/notifications":            SecuritySession,
	"POST /notifications/{id}/read":     SecuritySession,
	"POST /notifications/{id}/complete": SecuritySession,

	// Account
	"GET /api/dashboard":         SecuritySession,
	"DELETE /api/account":        SecuritySession,
	"PUT /api/account/profile":   SecuritySession,
	"POST /api/account/password": SecuritySession,

	// Admin
	"POST /admin/properties/{id}/verify":     SecurityAdmin,
	"POST /admin/bookings/{id}/approve":      SecurityAdmin,
	"POST /admin/bookings/{id}/reject":       SecurityAdmin,
	"POST /admin/payments/{id}/refund":       SecurityAdmin,
	"POST /admin/worker-payments/{id}/retry": SecurityAdmin,
	"POST /admin/maintenance/{id}/complete":  SecurityAdmin,
	"POST /admin/users/{id}/status":          SecurityAdmin,
	"DELETE /admin/users/{id}":               SecurityAdmin,
}

// GetSecurityLevel returns the security level for a route
func GetSecurityLevel(method, template string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method+" "+template]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}

// RequiredUserType returns the user type a level is restricted to, or ""
// when any signed-in user qualifies.
func (l SecurityLevel) RequiredUserType() string {
	switch l {
	case SecurityTenant:
		return "TENANT"
	case SecurityOwner:
		return "OWNER"
	case SecurityWorker:
		return "WORKER"
	case SecurityAdmin:
		return "ADMIN"
	}
	return ""
}
