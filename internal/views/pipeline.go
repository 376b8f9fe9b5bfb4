package views

import (
	"sort"
	"strconv"
	"strings"

	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/models/entities"
)

// ViewQuery is the ephemeral state of one table view. Page is 1-based.
// Changing any filter goes through the With* helpers, which reset Page to 1
// so a page index from a larger result set is never applied to a smaller one.
type ViewQuery struct {
	Search   string
	Status   string
	Project  string
	Page     int
	PageSize int
}

// NewViewQuery returns an unfiltered first-page query.
func NewViewQuery(pageSize int) ViewQuery {
	return ViewQuery{
		Status:   constants.StatusFilterAll,
		Project:  constants.ProjectFilterAll,
		Page:     1,
		PageSize: pageSize,
	}
}

func (q ViewQuery) WithSearch(search string) ViewQuery {
	q.Search = search
	q.Page = 1
	return q
}

func (q ViewQuery) WithStatus(status string) ViewQuery {
	q.Status = status
	q.Page = 1
	return q
}

func (q ViewQuery) WithProject(project string) ViewQuery {
	q.Project = project
	q.Page = 1
	return q
}

func (q ViewQuery) WithPage(page int) ViewQuery {
	q.Page = page
	return q
}

// Result is one rendered page plus the counts the pagination controls need.
type Result[T any] struct {
	Rows       []T
	TotalCount int
	TotalPages int
	Page       int
}

// ApplyProperties runs the full pipeline for an inventory view: filter,
// numeric-aware stable sort by block then lot, then page slice. Pure and
// total — no error paths.
func ApplyProperties(list []entities.Property, q ViewQuery) Result[entities.Property] {
	filtered := make([]entities.Property, 0, len(list))
	for _, p := range list {
		if propertyMatches(p, q) {
			filtered = append(filtered, p)
		}
	}

	SortProperties(filtered)

	rows, totalPages, page := paginate(filtered, q.Page, q.PageSize)
	return Result[entities.Property]{
		Rows:       rows,
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

// ApplyClients pages a client view filtered by project and name search.
func ApplyClients(list []entities.Client, q ViewQuery) Result[entities.Client] {
	filtered := make([]entities.Client, 0, len(list))
	for _, c := range list {
		if clientMatches(c, q) {
			filtered = append(filtered, c)
		}
	}

	rows, totalPages, page := paginate(filtered, q.Page, q.PageSize)
	return Result[entities.Client]{
		Rows:       rows,
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

// ApplyPayments pages a payment view filtered by status and client search.
func ApplyPayments(list []entities.Payment, q ViewQuery) Result[entities.Payment] {
	filtered := make([]entities.Payment, 0, len(list))
	for _, p := range list {
		if paymentMatches(p, q) {
			filtered = append(filtered, p)
		}
	}

	rows, totalPages, page := paginate(filtered, q.Page, q.PageSize)
	return Result[entities.Payment]{
		Rows:       rows,
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
	}
}

func propertyMatches(p entities.Property, q ViewQuery) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Block), needle) &&
			!strings.Contains(strings.ToLower(p.Lot), needle) &&
			!strings.Contains(strings.ToLower(p.BuyersName), needle) {
			return false
		}
	}

	if q.Status != "" && q.Status != constants.StatusFilterAll {
		if p.StatusKey != strings.ToLower(q.Status) {
			return false
		}
	}

	if q.Project != "" && q.Project != constants.ProjectFilterAll {
		if p.SourceCollection != q.Project {
			return false
		}
	}

	return true
}

func clientMatches(c entities.Client, q ViewQuery) bool {
	if q.Search != "" {
		if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(q.Search)) {
			return false
		}
	}

	if q.Project != "" && q.Project != constants.ProjectFilterAll {
		found := false
		for _, lot := range c.Properties {
			if lot.Project == q.Project {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func paymentMatches(p entities.Payment, q ViewQuery) bool {
	if q.Search != "" {
		if !strings.Contains(strings.ToLower(p.Client), strings.ToLower(q.Search)) {
			return false
		}
	}

	if q.Status != "" && q.Status != constants.StatusFilterAll {
		if p.StatusKey != strings.ToLower(q.Status) {
			return false
		}
	}

	return true
}

// SortProperties orders lots by block then lot, parsing the free-text fields
// as integers (non-numeric parses to 0). The sort is stable: rows with equal
// keys keep their fetch order.
func SortProperties(list []entities.Property) {
	sort.SliceStable(list, func(i, j int) bool {
		bi, bj := parseIntOrZero(list[i].Block), parseIntOrZero(list[j].Block)
		if bi != bj {
			return bi < bj
		}
		return parseIntOrZero(list[i].Lot) < parseIntOrZero(list[j].Lot)
	})
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Page slices one 1-based page out of an already-filtered set, for views that
// assemble their rows outside the standard pipelines.
func Page[T any](list []T, page, size int) (rows []T, totalPages, clamped int) {
	return paginate(list, page, size)
}

// paginate slices one 1-based page out of the filtered set. The page index is
// clamped into [1, totalPages]; an empty set yields no rows, 0 pages, and
// page 1.
func paginate[T any](list []T, page, size int) (rows []T, totalPages, clamped int) {
	if size <= 0 {
		size = 10
	}

	totalPages = (len(list) + size - 1) / size

	clamped = page
	if clamped < 1 {
		clamped = 1
	}
	if totalPages > 0 && clamped > totalPages {
		clamped = totalPages
	}

	if totalPages == 0 {
		return []T{}, 0, 1
	}

	start := (clamped - 1) * size
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], totalPages, clamped
}
