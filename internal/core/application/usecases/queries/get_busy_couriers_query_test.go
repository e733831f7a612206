package queries_test

import (
	"testing"

	"delivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBusyCouriersQuery_Valid(t *testing.T) {
	query := queries.NewGetBusyCouriersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetBusyCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBusyCouriersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBusyCouriersQueryIsNotConstructed)
}
