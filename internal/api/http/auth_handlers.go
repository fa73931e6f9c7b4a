package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizhive/quizhive/internal/apperr"
	"github.com/quizhive/quizhive/internal/auth"
	authmw "github.com/quizhive/quizhive/internal/auth/middleware"
)

type authResponse struct {
	Token string          `json:"token"`
	User  auth.PublicUser `json:"user"`
}

func RegisterHandler(accounts *auth.Accounts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.Validation("Invalid request body"))
			return
		}
		user, token, err := accounts.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
	}
}

func LoginHandler(accounts *auth.Accounts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.Validation("Invalid request body"))
			return
		}
		user, token, err := accounts.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
	}
}

func MeHandler(accounts *auth.Accounts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		if userID == "" {
			writeError(w, apperr.Auth("Not authorized, no token"))
			return
		}
		user, err := accounts.CurrentUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]auth.PublicUser{"user": user})
	}
}
