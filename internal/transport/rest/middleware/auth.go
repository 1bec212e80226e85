package middleware

import (
	"context"
	"net/http"
	"strings"

	"orgassess/internal/service"
)

type contextKey string

const (
	AnalystIDKey      contextKey = "analystId"
	OrganizationIDKey contextKey = "organizationId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAnalyst validates the analyst JWT from the Authorization header and
// scopes the request to the token's organization.
func (m *AuthMiddleware) RequireAnalyst(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			writeUnauthorized(w, "missing authorization header")
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), AnalystIDKey, claims.AnalystID)
		ctx = context.WithValue(ctx, OrganizationIDKey, claims.OrganizationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAnalystID extracts analyst ID from context
func GetAnalystID(ctx context.Context) string {
	if v, ok := ctx.Value(AnalystIDKey).(string); ok {
		return v
	}
	return ""
}

// GetOrganizationID extracts organization ID from context
func GetOrganizationID(ctx context.Context) string {
	if v, ok := ctx.Value(OrganizationIDKey).(string); ok {
		return v
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
