package api

import (
	"net/http"
	"time"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
)

// DashboardStats handles GET /dashboard/stats.
func (h *Handlers) DashboardStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, err := h.deps.Services.Dashboard.GetStats(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Stats fetched", stats)
	}
}
