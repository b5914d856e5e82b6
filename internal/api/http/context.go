package http

import (
	"context"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/security"
)

type contextKey string

const sessionKey contextKey = "session"

func withSession(ctx context.Context, claims *security.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey, claims)
}

// SessionFromContext returns the claims attached by the session middleware.
func SessionFromContext(ctx context.Context) (*security.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionKey).(*security.SessionClaims)
	return claims, ok && claims != nil
}

// viewerID is the signed-in user id, or 0 for anonymous requests.
func viewerID(ctx context.Context) int32 {
	if claims, ok := SessionFromContext(ctx); ok {
		return claims.UserID
	}
	return 0
}

func recipientOf(claims *security.SessionClaims) domain.Recipient {
	return domain.Recipient{Type: domain.RecipientType(claims.UserType), ID: claims.UserID}
}
