package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
)

// ListTickets handles GET /tickets.
func (h *Handlers) ListTickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page := 1
		if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
			page = p
		}

		result, err := h.deps.Services.Tickets.List(r.Context(), page)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list tickets")
			return
		}

		common.RespondSuccess(w, initTime, "Tickets fetched", tableResponse(result, constants.PageSizeTickets))
	}
}

// CreateTicket handles POST /tickets.
func (h *Handlers) CreateTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Subject == "" || req.Client == "" {
			common.RespondError(w, initTime, nil, "Subject and client are required", http.StatusBadRequest)
			return
		}

		ticket, err := h.deps.Services.Tickets.Create(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create ticket")
			return
		}

		common.RespondSuccess(w, initTime, "Ticket created", ticket, http.StatusCreated)
	}
}

// GetTicket handles GET /tickets/{id}.
func (h *Handlers) GetTicket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid ticket id", http.StatusBadRequest)
			return
		}

		ticket, err := h.deps.Services.Tickets.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				common.RespondError(w, initTime, nil, "Ticket not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch ticket")
			return
		}

		common.RespondSuccess(w, initTime, "Ticket fetched", ticket)
	}
}

// SetTicketStatus handles PUT /tickets/{id}/status.
func (h *Handlers) SetTicketStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid ticket id", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Tickets.SetStatus(r.Context(), id, req.Status); err != nil {
			common.RespondError(w, initTime, err, "Failed to update ticket", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Ticket updated", nil)
	}
}
