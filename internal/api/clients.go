package api

import (
	"net/http"
	"time"

	"havahills/backoffice/internal/auth"
	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
)

// ListClients handles GET /clients.
func (h *Handlers) ListClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := parseViewQuery(r, constants.PageSizeClients)
		result, err := h.deps.Services.Clients.List(r.Context(), q)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Clients fetched", tableResponse(result, constants.PageSizeClients))
	}
}

// MyLots handles GET /portal/lots: the signed-in client's own properties.
func (h *Handlers) MyLots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSessionData(r.Context())
		lots, err := h.deps.Services.Clients.LotsOwnedBy(r.Context(), session.ClientName)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Lots fetched", lots)
	}
}

// MyStatement handles GET /portal/statement: the signed-in client's
// statement of account.
func (h *Handlers) MyStatement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSessionData(r.Context())
		stmt, err := h.deps.Services.Payments.StatementOfAccount(r.Context(), session.ClientName)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Statement fetched", stmt)
	}
}

// MyDocuments handles GET /portal/documents: the signed-in client's uploaded
// files with signed URLs.
func (h *Handlers) MyDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSessionData(r.Context())
		files, err := h.deps.Services.Documents.Files(r.Context(), session.ClientName)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Documents fetched", files)
	}
}
