package search

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"lexconnect/models"
	"lexconnect/utils"
)

// SearchRequest is the raw query string of a directory search. Values are parsed and
// validated by Parse before any store access.
type SearchRequest struct {
	City             string `form:"city"`
	State            string `form:"state"`
	Specialization   string `form:"specialization"`
	Language         string `form:"language"`
	Experience       string `form:"experience"`
	ConsultationMode string `form:"consultationMode"`
	MinRating        string `form:"minRating"`
	MaxFee           string `form:"maxFee"`

	Q        string `form:"q"`
	Page     string `form:"page"`
	Limit    string `form:"limit"`
	PageSize string `form:"pageSize"`
}

// Limits bounds page sizes.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

var DefaultLimits = Limits{DefaultPageSize: 10, MaxPageSize: 100}

func (l Limits) normalized() Limits {
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = DefaultLimits.MaxPageSize
	}
	if l.DefaultPageSize <= 0 || l.DefaultPageSize > l.MaxPageSize {
		l.DefaultPageSize = DefaultLimits.DefaultPageSize
	}
	return l
}

// Parse validates req for the given mode and returns the store query.
// Text mode requires q and rejects structured predicates; filter mode rejects q.
func Parse(mode models.SearchMode, req SearchRequest, limits Limits) (models.LawyerQuery, error) {
	limits = limits.normalized()
	query := models.LawyerQuery{Mode: mode}

	var err error
	if query.Page, err = positiveInt("page", req.Page, 1); err != nil {
		return query, err
	}
	size := req.PageSize
	if size == "" {
		size = req.Limit
	}
	if query.PageSize, err = positiveInt("limit", size, limits.DefaultPageSize); err != nil {
		return query, err
	}
	if query.PageSize > limits.MaxPageSize {
		return query, utils.InvalidQuery(fmt.Sprintf("limit must not exceed %d", limits.MaxPageSize))
	}

	if query.Filter, err = parseFilter(req); err != nil {
		return query, err
	}
	text := strings.TrimSpace(req.Q)

	switch mode {
	case models.SearchModeText:
		if text == "" {
			return query, utils.InvalidQuery("search query is required")
		}
		if !query.Filter.IsEmpty() {
			return query, utils.InvalidQuery("text search cannot be combined with filters")
		}
		query.Text = text
	case models.SearchModeFilter:
		if text != "" {
			return query, utils.InvalidQuery("use the text search endpoint for free-text queries")
		}
	default:
		return query, utils.InvalidQuery(fmt.Sprintf("unknown search mode %q", mode))
	}
	return query, nil
}

func parseFilter(req SearchRequest) (models.LawyerFilter, error) {
	f := models.LawyerFilter{
		City:             strings.TrimSpace(req.City),
		State:            strings.TrimSpace(req.State),
		Specialization:   strings.TrimSpace(req.Specialization),
		Language:         strings.TrimSpace(req.Language),
		ConsultationMode: strings.TrimSpace(req.ConsultationMode),
	}

	if req.Experience != "" {
		v, err := strconv.Atoi(strings.TrimSpace(req.Experience))
		if err != nil || v < 0 {
			return f, utils.InvalidQuery("experience must be a non-negative integer")
		}
		f.MinExperience = &v
	}
	if req.MinRating != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(req.MinRating), 64)
		if err != nil || !finite(v) || v < 0 || v > 5 {
			return f, utils.InvalidQuery("minRating must be a number between 0 and 5")
		}
		f.MinRating = &v
	}
	if req.MaxFee != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(req.MaxFee), 64)
		if err != nil || !finite(v) || v < 0 {
			return f, utils.InvalidQuery("maxFee must be a non-negative number")
		}
		f.MaxFee = &v
	}
	return f, nil
}

// finite rejects the NaN and Inf spellings strconv.ParseFloat accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positiveInt(name, raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, utils.InvalidQuery(fmt.Sprintf("%s must be a positive integer", name))
	}
	return v, nil
}
