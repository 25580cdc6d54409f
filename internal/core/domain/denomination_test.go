package domain_test

import (
	"testing"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		values  []int64
		want    []domain.Denomination
		wantErr bool
	}{
		{name: "default set is ordered descending", values: []int64{10, 100, 500, 1000, 5000},
			want: []domain.Denomination{5000, 1000, 500, 100, 10}},
		{name: "unordered input", values: []int64{100, 5000, 10},
			want: []domain.Denomination{5000, 100, 10}},
		{name: "empty", values: nil, wantErr: true},
		{name: "zero face value", values: []int64{0, 10}, wantErr: true},
		{name: "negative face value", values: []int64{-10}, wantErr: true},
		{name: "duplicate face value", values: []int64{10, 100, 10}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.NewCatalog(tt.values...)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Descending())
			assert.Equal(t, len(tt.want), c.Len())
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := domain.DefaultCatalog()

	d, ok := c.Lookup(500)
	assert.True(t, ok)
	assert.Equal(t, domain.Denomination(500), d)
	assert.True(t, c.Contains(d))

	_, ok = c.Lookup(5)
	assert.False(t, ok)
	assert.False(t, c.Contains(domain.Denomination(5)))
}

func TestCatalog_DescendingIsACopy(t *testing.T) {
	c := domain.DefaultCatalog()
	order := c.Descending()
	order[0] = 1

	assert.Equal(t, domain.Denomination(5000), c.Descending()[0])
}
