package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specItems(t *testing.T) []commands.ItemSpec {
	t.Helper()
	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	return []commands.ItemSpec{
		{ProductID: kernel.NewUUID(), SKU: "SKU-1", Name: "Widget", UnitPrice: price, Quantity: 2},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := specItems(t)

	cmd, err := commands.NewCreateOrderCommand(id, customerID, items, order.PriorityHigh, "gift wrap")

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, order.PriorityHigh, cmd.Priority())
	assert.Equal(t, "gift wrap", cmd.Notes())
}

func TestNewCreateOrderCommand_DefaultsPriority(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), specItems(t), "", "")
	require.NoError(t, err)
	assert.Equal(t, order.DefaultPriority, cmd.Priority())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), specItems(t), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidPriority(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), specItems(t), order.Priority("WHENEVER"), "")
	require.Error(t, err)
}
