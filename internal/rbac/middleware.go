package rbac

import (
	"context"
	"encoding/json"
	"net/http"
)

// Gate enforces the capability table on routes. It assumes an upstream
// middleware already authenticated the request and put the role in the
// context.
type Gate struct {
	checker *Checker
}

func NewGate(c *Checker) *Gate {
	if c == nil {
		c = NewChecker(nil)
	}
	return &Gate{checker: c}
}

// Require enforces a single permission. The denial message is distinct
// from authentication failures so a logged-in caller can tell the
// difference.
func (g *Gate) Require(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == "" || !g.checker.Has(role, perm) {
				forbid(w, perm)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var denyMessages = map[string]string{
	PermCreateQuiz: "Access denied. Only administrators can create quizzes. Please contact an admin if you need this access.",
}

func forbid(w http.ResponseWriter, perm string) {
	msg, ok := denyMessages[perm]
	if !ok {
		msg = "Access denied. You do not have permission to perform this action."
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// ---- role in context ----

type ctxKey struct{}

var ctxKeyRole = ctxKey{}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, ctxKeyRole, role)
}

func RoleFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeyRole); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
