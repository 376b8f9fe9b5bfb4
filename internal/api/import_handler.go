package api

import (
	"encoding/json"
	"net/http"
	"time"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
)

// ImportProperties handles POST /inventory/import: a JSON array of sheet
// rows, each routed to the collection its Project column names.
func (h *Handlers) ImportProperties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var rows []dtos.ImportRow
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(rows) == 0 {
			common.RespondError(w, initTime, nil, "No rows to import", http.StatusBadRequest)
			return
		}

		result := h.deps.Services.Import.ImportRows(r.Context(), rows)

		message := "Import finished"
		if result.Failed > 0 {
			message = constants.MsgImportPartialFail
		}
		common.RespondSuccess(w, initTime, message, result)
	}
}
