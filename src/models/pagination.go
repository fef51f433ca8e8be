package models

import "math"

// PaginationParams holds paging and filtering for list endpoints.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Status string `json:"status" query:"status" example:"under_review"`
	Order  string `json:"order" query:"order" example:"desc"`
}

// PaginatedResponse wraps one page of results.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination returns the defaults used when the query string is empty.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 10,
		Order: "desc",
	}
}

// Normalize fills in defaults for zero or out-of-range values.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 10
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
}

// NewPaginatedResponse builds a PaginatedResponse.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip returns the number of documents to skip.
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}
