package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/dtos"
)

// uploads larger than this are refused outright
const maxUploadBytes = 20 << 20

// ListDocuments handles GET /documents.
func (h *Handlers) ListDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := parseViewQuery(r, constants.PageSizeDocuments)
		result, err := h.deps.Services.Documents.List(r.Context(), q)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Documents fetched", tableResponse(result, constants.PageSizeDocuments))
	}
}

// UploadDocument handles POST /documents/{client}/files as a multipart form
// with a single "file" part.
func (h *Handlers) UploadDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		client := chi.URLParam(r, "client")
		if client == "" {
			common.RespondError(w, initTime, nil, "Client name is required", http.StatusBadRequest)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			common.RespondError(w, initTime, nil, "Invalid upload", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			common.RespondError(w, initTime, nil, "Missing file part", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to read upload")
			return
		}

		if err := h.deps.Services.Documents.Upload(r.Context(), client, header.Filename, data); err != nil {
			status := http.StatusInternalServerError
			if err.Error() == constants.MsgUploadInFlight {
				status = http.StatusConflict
			}
			common.RespondError(w, initTime, err, "", status)
			return
		}

		common.RespondSuccess(w, initTime, "Document uploaded", nil, http.StatusCreated)
	}
}

// ListDocumentFiles handles GET /documents/{client}/files.
func (h *Handlers) ListDocumentFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		client := chi.URLParam(r, "client")
		files, err := h.deps.Services.Documents.Files(r.Context(), client)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgFetchFailed, http.StatusBadGateway)
			return
		}

		common.RespondSuccess(w, initTime, "Files fetched", files)
	}
}

// ShareDocument handles POST /documents/share and returns a single-use link.
func (h *Handlers) ShareDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ShareDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Client == "" || req.File == "" {
			common.RespondError(w, initTime, nil, "Client and file are required", http.StatusBadRequest)
			return
		}

		link, err := h.deps.Services.Documents.CreateShareLink(r.Context(), req.Client, req.File)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create share link")
			return
		}

		common.RespondSuccess(w, initTime, "Share link created", link, http.StatusCreated)
	}
}

// ResolveSharedDocument handles GET /documents/shared/{token}. Public: the
// token itself is the credential, and it works exactly once.
func (h *Handlers) ResolveSharedDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		token := chi.URLParam(r, "token")
		url, err := h.deps.Services.Documents.ResolveShareLink(r.Context(), token)
		if err != nil {
			common.RespondError(w, initTime, nil, "Link is invalid, expired, or already used", http.StatusGone)
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}
