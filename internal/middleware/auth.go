package middleware

import (
	"net/http"
	"strings"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
)

// AuthMiddleware resolves the session token into SessionData. Requests
// without a live session never reach the handlers.
func AuthMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			token := r.Header.Get("X-Session-Token")
			if token == "" {
				authHeader := r.Header.Get("Authorization")
				if strings.HasPrefix(authHeader, "Bearer ") {
					token = strings.TrimPrefix(authHeader, "Bearer ")
				}
			}

			if token == "" {
				common.RespondError(w, initTime, nil, "Unauthorized. Missing session token", http.StatusUnauthorized)
				return
			}

			session, err := sessions.GetSession(r.Context(), token)
			if err != nil {
				common.RespondError(w, initTime, nil, constants.MsgSessionExpired, http.StatusUnauthorized)
				return
			}

			// sliding expiration: activity keeps the session alive
			if err := sessions.RefreshSession(r.Context(), session); err != nil {
				logging.Warn("Failed to refresh session", "session_id", session.SessionID, "error", err.Error())
			}

			ctx := auth.SetSessionData(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
