package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	cases := []struct {
		name           string
		page, pageSize int
		want           int
	}{
		{"first page", 1, 10, 0},
		{"third page", 3, 10, 20},
		{"non-positive page", 0, 10, 0},
		{"largest exact", math.MaxInt/10 + 1, 10, math.MaxInt / 10 * 10},
		{"overflowing page saturates", 1_000_000_000_000_000_000, 10, math.MaxInt},
		{"max int page", math.MaxInt, 100, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageOffset(tc.page, tc.pageSize))
		})
	}
}

func TestNewPaginationBeyondLastPage(t *testing.T) {
	p := NewPagination(math.MaxInt, 10, 3)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
