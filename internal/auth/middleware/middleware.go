package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	authsvc "github.com/quizhive/quizhive/internal/auth"
	"github.com/quizhive/quizhive/internal/rbac"
)

// JWTMiddleware extracts the bearer token, validates it, and attaches the
// decoded identity (subject + role) to the request context. Routes mounted
// without it are anonymous by design.
func JWTMiddleware(svc *authsvc.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				unauthorized(w, "Not authorized, no token")
				return
			}
			claims, err := svc.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				unauthorized(w, "Not authorized, token failed")
				return
			}
			ctx := WithSubject(r.Context(), claims.UserID)
			ctx = rbac.WithRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
