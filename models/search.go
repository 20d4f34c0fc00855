package models

import "math"

type SearchMode string

const (
	SearchModeFilter SearchMode = "filter"
	SearchModeText   SearchMode = "text"
)

// LawyerFilter holds the structured predicates; zero values and nil pointers mean "not set".
type LawyerFilter struct {
	City             string
	State            string
	Specialization   string
	Language         string
	MinExperience    *int
	ConsultationMode string
	MinRating        *float64
	MaxFee           *float64
}

func (f LawyerFilter) IsEmpty() bool {
	return f.City == "" && f.State == "" && f.Specialization == "" && f.Language == "" &&
		f.MinExperience == nil && f.ConsultationMode == "" && f.MinRating == nil && f.MaxFee == nil
}

// LawyerQuery is a validated directory query. Exactly one of Filter or Text applies, chosen by Mode.
type LawyerQuery struct {
	Mode     SearchMode
	Filter   LawyerFilter
	Text     string
	Page     int
	PageSize int
}

func (q LawyerQuery) Offset() int {
	return PageOffset(q.Page, q.PageSize)
}

// PageOffset returns the number of items before page. It saturates at math.MaxInt
// instead of overflowing, so a huge page number yields an empty page.
func PageOffset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// LawyerPage is one page of a store query plus the total number of matches.
type LawyerPage struct {
	Items      []LawyerProfile
	TotalCount int
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination derives page metadata; pageSize must be positive.
func NewPagination(page, pageSize, total int) Pagination {
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

type SearchResult struct {
	Lawyers    []LawyerProfile `json:"lawyers"`
	Pagination Pagination      `json:"pagination"`
}
