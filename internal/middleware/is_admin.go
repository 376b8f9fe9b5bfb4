package middleware

import (
	"net/http"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
)

func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			session := auth.GetSessionData(r.Context())

			if session == nil || session.Role != constants.RoleAdmin {
				common.RespondError(w, time.Now(), nil, "Unauthorized. Need admin perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
