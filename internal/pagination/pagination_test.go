package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetracker/lifetracker-api/internal/pagination"
)

func TestParse(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/activities", nil)

		p, err := pagination.Parse(r)
		require.NoError(t, err)
		assert.Equal(t, pagination.DefaultLimit, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/activities?limit=10&offset=20", nil)

		p, err := pagination.Parse(r)
		require.NoError(t, err)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 20, p.Offset)
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/activities?limit=-1", nil)

		_, err := pagination.Parse(r)
		assert.ErrorIs(t, err, pagination.ErrInvalidLimit)
	})

	t.Run("MalformedOffset", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/activities?offset=abc", nil)

		_, err := pagination.Parse(r)
		assert.ErrorIs(t, err, pagination.ErrInvalidOffset)
	})
}
