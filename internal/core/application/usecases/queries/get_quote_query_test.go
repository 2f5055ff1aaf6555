package queries_test

import (
	"testing"

	"bakery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQuoteQuery_Valid(t *testing.T) {
	query := queries.NewGetQuoteQuery(24)
	require.NoError(t, query.Validate())
	assert.Equal(t, 24, query.Quantity())
}

func TestNewGetQuoteQuery_ClampsToOne(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query := queries.NewGetQuoteQuery(test.quantity)
			require.NoError(t, query.Validate())
			assert.Equal(t, 1, query.Quantity())
		})
	}
}

func TestGetQuoteQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQuoteQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
}
