package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerCartQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerCartQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCustomerCartQuery_EmptyOwner(t *testing.T) {
	_, err := queries.NewGetCustomerCartQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetCustomerCartQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerCartQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerCartQueryIsNotConstructed)
}

func TestNewGetOrdersByOwnerQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByOwnerQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOrdersByOwnerQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByOwnerQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByOwnerQueryIsNotConstructed)
}

func TestNewGetPendingQuoteRequestsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingQuoteRequestsQuery()
	require.NoError(t, query.Validate())
}

func TestGetPendingQuoteRequestsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingQuoteRequestsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingQuoteRequestsQueryIsNotConstructed)
}
