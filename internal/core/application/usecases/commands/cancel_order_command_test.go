package commands_test

import (
	"testing"

	"pharmadmin/internal/core/application/usecases/commands"
	"pharmadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(42)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(42), cmd.OrderID())
}

func TestNewCancelOrderCommand_InvalidID(t *testing.T) {
	for _, id := range []int64{0, -5} {
		_, err := commands.NewCancelOrderCommand(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	}
}

func TestOrderIDCommands_RejectNonPositiveIDs(t *testing.T) {
	_, err := commands.NewCancelInTransitOrderCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewRemoveOrderCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewRemoveInTransitOrderCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestZeroValueCommands_FailValidation(t *testing.T) {
	assert.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CancelInTransitOrderCommand{}.Validate(),
		commands.ErrCancelInTransitOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RemoveOrderCommand{}.Validate(), commands.ErrRemoveOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RemoveInTransitOrderCommand{}.Validate(),
		commands.ErrRemoveInTransitOrderCommandIsNotConstructed)
}
