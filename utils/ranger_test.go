package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanger(t *testing.T) {
	// Index phrases
	{
		for _, tc := range []struct {
			dim  string
			want Range
		}{
			{":", Range{0, 9}},
			{":5", Range{0, 4}},
			{"5:5", Range{5, 5}},
			{"4", Range{4, 4}},
			{" 2 ", Range{2, 2}},
			{"end", Range{9, 9}},
			{"2:5", Range{2, 4}},
			{"7:", Range{7, 9}},
		} {
			r, err := ParseRange(tc.dim, 10)
			require.NoError(t, err, tc.dim)
			assert.Equal(t, tc.want, r, tc.dim)
		}
	}
	// Inclusive ranges
	{
		r, err := ParseRange("2:5", 10)
		require.NoError(t, err)
		assert.Equal(t, 3, r.Length())
		assert.True(t, r.Contains(4))
		assert.False(t, r.Contains(5))

		r, err = ParseRange(":", 4)
		require.NoError(t, err)
		assert.Equal(t, Range{0, 3}, r)
	}
	// Rejected phrases
	{
		for _, dim := range []string{"3:20", "10", "-1", "5:2", "a:3", "2:b", "x", ""} {
			_, err := ParseRange(dim, 10)
			assert.True(t, errors.Is(err, ErrInvalidArgument), dim)
		}
	}
}
