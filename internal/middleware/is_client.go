package middleware

import (
	"net/http"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
)

// IsClientMiddleware gates the client portal. Only accounts resolved to a
// client record may read their own lots, payments and documents.
func IsClientMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			session := auth.GetSessionData(r.Context())

			if session == nil || session.Role != constants.RoleClient {
				common.RespondError(w, time.Now(), nil, "Unauthorized. Client portal only", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
