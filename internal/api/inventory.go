package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
)

// ListInventory handles GET /inventory. Supports search, status, project and
// page query parameters.
func (h *Handlers) ListInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := parseViewQuery(r, constants.PageSizeInventory)
		result, err := h.deps.Services.Inventory.List(r.Context(), q)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Inventory fetched", tableResponse(result, constants.PageSizeInventory))
	}
}

type propertyWriteRequest struct {
	Project string                 `json:"project"`
	Fields  map[string]interface{} `json:"fields"`
}

// AddProperty handles POST /inventory.
func (h *Handlers) AddProperty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req propertyWriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !isPropertyCollection(req.Project) {
			common.RespondError(w, initTime, nil, "Unknown project", http.StatusBadRequest)
			return
		}

		id, err := h.deps.Services.Inventory.AddProperty(r.Context(), req.Project, req.Fields)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to add property")
			return
		}

		common.RespondSuccess(w, initTime, "Property added", map[string]string{"id": id}, http.StatusCreated)
	}
}

// UpdateProperty handles PUT /inventory/{id}.
func (h *Handlers) UpdateProperty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")

		var req propertyWriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !isPropertyCollection(req.Project) {
			common.RespondError(w, initTime, nil, "Unknown project", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Inventory.UpdateProperty(r.Context(), req.Project, id, req.Fields); err != nil {
			common.RespondError(w, initTime, err, "Failed to update property")
			return
		}

		common.RespondSuccess(w, initTime, "Property updated", nil)
	}
}

// DeleteProperty handles DELETE /inventory/{id}?project=...
func (h *Handlers) DeleteProperty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")
		project := r.URL.Query().Get("project")
		if !isPropertyCollection(project) {
			common.RespondError(w, initTime, nil, "Unknown project", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Inventory.DeleteProperty(r.Context(), project, id); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete property")
			return
		}

		common.RespondSuccess(w, initTime, "Property deleted", nil)
	}
}

func isPropertyCollection(name string) bool {
	for _, collection := range constants.PropertyCollections {
		if collection == name {
			return true
		}
	}
	return false
}
