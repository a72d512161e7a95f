package commands_test

import (
	"testing"

	"quickcourier/internal/core/application/usecases/commands"
	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(userID, addressID,
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 2}},
		[]string{"GIFT_WRAP", "EXPRESS"})
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, addressID, cmd.AddressID())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, []string{"GIFT_WRAP", "EXPRESS"}, cmd.ExtraCodes())
}

func TestNewCreateOrderCommand_NoExtras(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}}, nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.ExtraCodes())
}

func TestNewCreateOrderCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 0}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
