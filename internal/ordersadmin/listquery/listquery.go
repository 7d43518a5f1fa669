package listquery

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
)

const (
	// AllSentinel marks an absent search scope or filter value. It is a UI
	// placeholder only and must never reach the outgoing query.
	AllSentinel = "all"

	DefaultPage     = 1
	DefaultPageSize = 10
)

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

type SortOrder string

var PageSizes = []int{10, 25, 50, 100}

var (
	ErrInvalidPage       = errors.New("page must be a positive integer")
	ErrInvalidPageSize   = errors.New("page size is not an allowed value")
	ErrUnknownSortColumn = errors.New("unknown sort column")
	ErrInvalidSortOrder  = errors.New("sort order must be asc or desc")
)

// Params is the operator-chosen list state shared by every resource: one
// page of a collection, optionally searched, sorted and filtered.
type Params struct {
	Page        int
	PageSize    int
	Search      string
	SearchField string
	SortBy      string
	SortOrder   SortOrder
	Filters     map[string]string
}

// Normalize fills defaults and trims the search text. An empty search is
// treated as absent from here on.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
	if p.SearchField == "" {
		p.SearchField = AllSentinel
	}
	if p.SortOrder == "" {
		p.SortOrder = Descending
	}
	return p
}

// Validate checks a normalized Params against the resource's sortable
// column set.
func (p Params) Validate(sortable []string) error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if !slices.Contains(PageSizes, p.PageSize) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.SortOrder != Ascending && p.SortOrder != Descending {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, p.SortOrder)
	}
	if p.SortBy != "" && !slices.Contains(sortable, p.SortBy) {
		return fmt.Errorf("%w: %q", ErrUnknownSortColumn, p.SortBy)
	}
	return nil
}

// Values builds the outgoing query string. Placeholder values are omitted,
// never forwarded: an empty search, the "all" scope and "all"/empty filters
// simply do not appear. SearchField is forwarded only alongside a search.
func (p Params) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("limit", strconv.Itoa(p.PageSize))
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
		values.Set("sortOrder", string(p.SortOrder))
	}
	if p.Search != "" {
		values.Set("search", p.Search)
		if p.SearchField != AllSentinel {
			values.Set("searchField", p.SearchField)
		}
	}
	for name, value := range p.Filters {
		if value == "" || value == AllSentinel {
			continue
		}
		values.Set(name, value)
	}
	return values
}

// ParseParams is the inbound counterpart of Values, used by the gateway's
// own list endpoints. Unknown query keys become exact-match filters.
func ParseParams(values url.Values) Params {
	params := Params{
		Search:      values.Get("search"),
		SearchField: values.Get("searchField"),
		SortBy:      values.Get("sortBy"),
		SortOrder:   SortOrder(values.Get("sortOrder")),
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
		params.PageSize = limit
	}
	for name := range values {
		switch name {
		case "page", "limit", "search", "searchField", "sortBy", "sortOrder":
			continue
		}
		if v := values.Get(name); v != "" {
			if params.Filters == nil {
				params.Filters = make(map[string]string)
			}
			params.Filters[name] = v
		}
	}
	return params.Normalize()
}

// Result is one fetched page. Records keep server order; an empty page is a
// valid result, not an error. Total and TotalPages are server-owned.
type Result[T any] struct {
	Records    []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func FromPaginated[T any](envelope backendprotocol.Paginated[T]) Result[T] {
	records := envelope.Data
	if records == nil {
		records = make([]T, 0)
	}
	return Result[T]{
		Records:    records,
		Page:       envelope.Page,
		PageSize:   envelope.Limit,
		Total:      envelope.Total,
		TotalPages: envelope.TotalPages,
	}
}
