package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

type contextKey string

const identityKey = contextKey("identity")

// Authenticate rejects requests without a valid bearer token and stores the
// caller identity in the request context.
func Authenticate(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, apperrors.ErrUnauthorized("Authorization required"))
				return
			}
			id, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					writeError(w, apperrors.ErrUnauthorized("Token expired"))
					return
				}
				writeError(w, apperrors.ErrUnauthorized("Invalid or expired token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole only lets callers holding one of roles through. It must run
// after Authenticate.
func RequireRole(roles ...entities.Role) func(http.Handler) http.Handler {
	required := make([]string, len(roles))
	for i, role := range roles {
		required[i] = string(role)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				writeError(w, apperrors.ErrUnauthorized("Authorization required"))
				return
			}
			for _, role := range roles {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, apperrors.FromError(apperrors.NewAuthorizationError(string(id.Role), required...)))
		})
	}
}

func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(identityKey).(entities.Identity)
	return id, ok
}

func writeError(w http.ResponseWriter, e *apperrors.HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code)
	_ = json.NewEncoder(w).Encode(e)
}
