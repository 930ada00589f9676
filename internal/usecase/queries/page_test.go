//go:build unit

package queries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 0, Size: 15}, PageRequest{Page: -3}.Normalize(15))
	assert.Equal(t, PageRequest{Page: 2, Size: MaxPageSize}, PageRequest{Page: 2, Size: 5000}.Normalize(15))
	assert.Equal(t, 30, PageRequest{Page: 2, Size: 15}.Offset())
}

func TestPageRequestOffsetNeverOverflows(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
	}{
		{name: "page far past the last row", req: PageRequest{Page: 700000000000000000, Size: RestaurantPageSize}},
		{name: "largest page with largest size", req: PageRequest{Page: math.MaxInt, Size: MaxPageSize}},
		{name: "oversized size on a huge page", req: PageRequest{Page: math.MaxInt / 2, Size: 5000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.req.Normalize(RestaurantPageSize)

			assert.LessOrEqual(t, p.Page, MaxPage)
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, PageRequest{Page: 1, Size: 5}, 7)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, int64(7), p.TotalItems)

	empty := NewPage[int](nil, PageRequest{Size: 5}, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
