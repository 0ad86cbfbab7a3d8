package interceptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vasapolrittideah/opportunity-tracker-api/shared/auth"
)

type contextKey struct{}

var UserClaimsKey = contextKey{}

var (
	ErrMissingAuthorization = errors.New("missing authorization header")
	ErrInvalidAuthorization = errors.New("invalid authorization header format")
	ErrMissingSubject       = errors.New("token has no subject")
)

// NewJWTMiddleware rejects requests without a valid bearer token and stores the token
// claims in the request context under UserClaimsKey.
func NewJWTMiddleware(jwtAuth *auth.JWTAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := extractAndValidateJWT(r, jwtAuth)
			if err != nil {
				writeUnauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by the middleware.
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(jwt.MapClaims)
	return claims, ok
}

// UserIDFromContext returns the authenticated user id (the token subject).
func UserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}

	return sub, true
}

func extractAndValidateJWT(r *http.Request, jwtAuth *auth.JWTAuthenticator) (jwt.MapClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrMissingAuthorization
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
		return nil, ErrInvalidAuthorization
	}

	claims := jwt.MapClaims{}
	if _, err := jwtAuth.ValidateTokenWithClaims(strings.TrimSpace(parts[1]), claims); err != nil {
		return nil, err
	}

	if sub, err := claims.GetSubject(); err != nil || sub == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	msg := "Invalid or expired token"
	if errors.Is(err, ErrMissingAuthorization) {
		msg = "Access token required"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
