package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    pagination.Params
	}{
		{"defaults", 0, 0, pagination.Params{Page: 1, PerPage: pagination.DefaultPerPage}},
		{"negative", -3, -1, pagination.Params{Page: 1, PerPage: pagination.DefaultPerPage}},
		{"capped", 2, 10_000, pagination.Params{Page: 2, PerPage: pagination.MaxPerPage}},
		{"kept", 3, 25, pagination.Params{Page: 3, PerPage: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.NewParams(tt.page, tt.perPage)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestParams_OffsetLimit(t *testing.T) {
	p := pagination.NewParams(3, 20)

	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestNewInfo(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		info := pagination.NewInfo(pagination.NewParams(1, 6), 14)

		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})

	t.Run("empty result has one page", func(t *testing.T) {
		info := pagination.NewInfo(pagination.NewParams(1, 6), 0)

		assert.Equal(t, 1, info.TotalPages)
		assert.False(t, info.HasNext)
	})

	t.Run("last page", func(t *testing.T) {
		info := pagination.NewInfo(pagination.NewParams(2, 6), 12)

		assert.Equal(t, 2, info.TotalPages)
		assert.False(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})
}
