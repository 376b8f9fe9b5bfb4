package api

import (
	"encoding/json"
	"net/http"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/models/dtos"
)

// Login handles POST /auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Email and password are required", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Auth.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusUnauthorized)
			return
		}

		common.RespondSuccess(w, initTime, "Signed in", resp)
	}
}

// Logout handles POST /auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSessionData(r.Context())
		if session == nil {
			common.RespondError(w, initTime, nil, "No active session", http.StatusUnauthorized)
			return
		}

		if err := h.deps.Services.Auth.SignOut(r.Context(), session.SessionID); err != nil {
			common.RespondError(w, initTime, err, "Failed to sign out")
			return
		}

		common.RespondSuccess(w, initTime, "Signed out", nil)
	}
}

// Session handles GET /auth/session and returns who the token belongs to.
func (h *Handlers) Session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSessionData(r.Context())
		if session == nil {
			common.RespondError(w, initTime, nil, "No active session", http.StatusUnauthorized)
			return
		}

		common.RespondSuccess(w, initTime, "Session active", dtos.LoginResponse{
			SessionID:  session.SessionID,
			Role:       session.Role.String(),
			Email:      session.Email,
			ClientID:   session.ClientID,
			ClientName: session.ClientName,
		})
	}
}

// CreateClientAccount handles POST /clients/account. Admin only: provisions
// sign-in credentials for an existing client record.
func (h *Handlers) CreateClientAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Email and password are required", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Auth.CreateClientAccount(r.Context(), req.Email, req.Password); err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Client account created", nil, http.StatusCreated)
	}
}
