package queries_test

import (
	"testing"

	"bakery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerSummariesQuery_Valid(t *testing.T) {
	query := queries.NewGetCustomerSummariesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetCustomerSummariesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerSummariesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerSummariesQueryIsNotConstructed)
}
