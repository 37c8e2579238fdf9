package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter: must be positive integer")
	ErrInvalidPageSize = errors.New("invalid pageSize parameter: must be non-negative integer")
)

// Params selects a page of series groups. A PageSize of 0 means everything on one page.
type Params struct {
	Page     int
	PageSize int
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// FromQuery reads page and pageSize, defaulting to the first page with no size limit
func FromQuery(qp url.Values) (Params, error) {
	params := Params{
		Page:     1,
		PageSize: 0,
	}

	if pageStr := qp.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		params.Page = page
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 0 {
			return params, ErrInvalidPageSize
		}
		params.PageSize = pageSize
	}

	return params, nil
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = totalItems / p.PageSize
		if totalItems%p.PageSize != 0 {
			totalPages++
		}
	} else if totalItems > 0 {
		totalPages = 1
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Slice returns the items on the requested page. Pages past the end are empty.
func Slice[T any](p Params, items []T) ([]T, Meta) {
	meta := p.BuildMeta(len(items))
	if p.PageSize == 0 {
		return items, meta
	}

	// compare pages before multiplying so a huge page can't overflow the offset
	if max(p.Page, 1) > meta.TotalPages {
		return []T{}, meta
	}

	offset := (max(p.Page, 1) - 1) * p.PageSize
	end := offset + min(p.PageSize, len(items)-offset)
	return items[offset:end], meta
}
