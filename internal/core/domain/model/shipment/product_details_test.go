package shipment_test

import (
	"testing"

	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductDetails(t *testing.T) {
	t.Run("should decode products keyed by code", func(t *testing.T) {
		raw := `{"P100":{"name":"Amoxicillin 250mg","quantity":2,"price":350},"P007":{"name":"ORS","quantity":1,"price":"45.50"}}`

		details, err := shipment.ParseProductDetails(raw)

		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, "Amoxicillin 250mg", details["P100"].Name)
		assert.Equal(t, 2, details["P100"].Quantity)
		assert.Equal(t, []string{"P007", "P100"}, details.Codes())
		assert.Equal(t, "745.50", details.Total().String())
	})

	t.Run("should accept an empty object", func(t *testing.T) {
		details, err := shipment.ParseProductDetails(`{}`)

		require.NoError(t, err)
		assert.Empty(t, details)
	})

	malformed := map[string]string{
		"syntax error": `{"P1":`,
		"array":        `[{"name":"x"}]`,
		"null":         `null`,
		"empty":        ``,
		"wrong types":  `{"P1":{"name":"x","quantity":"two","price":1}}`,
	}
	for name, raw := range malformed {
		t.Run("should report malformed payload for "+name, func(t *testing.T) {
			details, err := shipment.ParseProductDetails(raw)

			require.Error(t, err)
			assert.Nil(t, details)
			assert.ErrorIs(t, err, errs.ErrPayloadIsMalformed)
			assert.Equal(t, errs.KindParseError, errs.KindOf(err))
		})
	}
}
