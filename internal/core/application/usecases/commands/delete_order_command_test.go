package commands_test

import (
	"testing"

	"bladeshop/internal/core/application/usecases/commands"
	"bladeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		cmd, err := commands.NewDeleteOrderCommand(7)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(7), cmd.OrderID())
	})

	t.Run("rejects non-positive order IDs", func(t *testing.T) {
		_, err := commands.NewDeleteOrderCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.DeleteOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
