package api

import (
	"net/http"
	"strconv"

	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/views"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// parseViewQuery reads the standard table-view parameters off the request.
func parseViewQuery(r *http.Request, pageSize int) views.ViewQuery {
	q := views.NewViewQuery(pageSize)

	params := r.URL.Query()
	if search := params.Get("search"); search != "" {
		q = q.WithSearch(search)
	}
	if status := params.Get("status"); status != "" {
		q = q.WithStatus(status)
	}
	if project := params.Get("project"); project != "" {
		q = q.WithProject(project)
	}
	if page, err := strconv.Atoi(params.Get("page")); err == nil {
		q = q.WithPage(page)
	}

	return q
}

// tableResponse adapts a view result into the wire shape.
func tableResponse[T any](result views.Result[T], pageSize int) dtos.TableResponse {
	return dtos.TableResponse{
		Rows:       result.Rows,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
		Page:       result.Page,
		PageSize:   pageSize,
	}
}
