package kernel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/pkg/errs"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"rfc3339", "2024-03-05T14:30:00Z"},
		{"iso without zone", "2024-03-05T14:30:00"},
		{"iso with fraction", "2024-03-05T14:30:00.000"},
		{"space separated", "2024-03-05 14:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kernel.ParseTimestamp("created", tt.input)

			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	t.Run("should parse a bare date at midnight", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("created", "2024-03-05")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("should return zero time for empty input", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("created", "  ")

		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.ParseTimestamp("created", "yesterday")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
