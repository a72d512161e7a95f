package queries_test

import (
	"testing"
	"time"

	"quickcourier/internal/core/application/usecases/queries"
	"quickcourier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id, userID)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())
	assert.Equal(t, userID, query.UserID())

	_, err = queries.NewGetOrderQuery(kernel.UUID{}, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(id, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	invalid := queries.GetOrderQuery{}
	assert.ErrorIs(t, invalid.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetActiveShippingRulesQuery(t *testing.T) {
	at := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	query, err := queries.NewGetActiveShippingRulesQuery(at)
	require.NoError(t, err)
	assert.Equal(t, at, query.At())

	_, err = queries.NewGetActiveShippingRulesQuery(time.Time{})
	require.Error(t, err)
}

func TestNewGetActiveShippingExtrasQuery(t *testing.T) {
	query := queries.NewGetActiveShippingExtrasQuery()
	require.NoError(t, query.Validate())

	invalid := queries.GetActiveShippingExtrasQuery{}
	assert.ErrorIs(t, invalid.Validate(), queries.ErrGetActiveShippingExtrasQueryIsNotConstructed)
}

func TestNewGetStalePendingOrdersQuery(t *testing.T) {
	cutoff := time.Date(2025, 6, 14, 11, 30, 0, 0, time.UTC)
	query, err := queries.NewGetStalePendingOrdersQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, cutoff, query.Cutoff())

	_, err = queries.NewGetStalePendingOrdersQuery(time.Time{})
	require.Error(t, err)

	invalid := queries.GetStalePendingOrdersQuery{}
	assert.ErrorIs(t, invalid.Validate(), queries.ErrGetStalePendingOrdersQueryIsNotConstructed)
}
