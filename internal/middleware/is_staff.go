package middleware

import (
	"net/http"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
)

// IsStaffMiddleware admits admins and limited-access users. Limited users
// only ever see documents, tickets and team chat, so this is the gate on
// those groups.
func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			session := auth.GetSessionData(r.Context())

			if session != nil && (session.Role == constants.RoleAdmin || session.Role == constants.RoleLimited) {
				next.ServeHTTP(w, r)
				return
			}
			common.RespondError(w, time.Now(), nil, "Unauthorized. Need staff perms", http.StatusForbidden)
		})
	}
}
