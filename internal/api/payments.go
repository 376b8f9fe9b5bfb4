package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
)

// ListPayments handles GET /payments.
func (h *Handlers) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := parseViewQuery(r, constants.PageSizePayments)
		result, err := h.deps.Services.Payments.List(r.Context(), q)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Payments fetched", tableResponse(result, constants.PageSizePayments))
	}
}

// CreatePayment handles POST /payments.
func (h *Handlers) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Client == "" || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, "Client and a positive amount are required", http.StatusBadRequest)
			return
		}

		id, err := h.deps.Services.Payments.Create(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to record payment")
			return
		}

		common.RespondSuccess(w, initTime, "Payment recorded", map[string]string{"id": id}, http.StatusCreated)
	}
}

type paymentStatusRequest struct {
	Status string `json:"status"`
}

// SetPaymentStatus handles PUT /payments/{id}/status.
func (h *Handlers) SetPaymentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")

		var req paymentStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Payments.SetStatus(r.Context(), id, req.Status); err != nil {
			common.RespondError(w, initTime, err, "Failed to update payment", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Payment updated", nil)
	}
}

// Statement handles GET /payments/statement/{client}.
func (h *Handlers) Statement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		client := chi.URLParam(r, "client")
		if client == "" {
			common.RespondError(w, initTime, nil, "Client name is required", http.StatusBadRequest)
			return
		}

		stmt, err := h.deps.Services.Payments.StatementOfAccount(r.Context(), client)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Statement fetched", stmt)
	}
}
