package commands_test

import (
	"testing"

	"bladeshop/internal/core/application/usecases/commands"
	"bladeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		"Chef 210", "Gyuto", "AEB-L", "satin", "walnut", "hidden-tang", "2025-03-01", nil)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		cmd := validCreateOrderCommand(t)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Chef 210", cmd.Title())
		assert.Equal(t, "Gyuto", cmd.Model())
		assert.Equal(t, "AEB-L", cmd.Steel())
		assert.Equal(t, "satin", cmd.BladeFinish())
		assert.Equal(t, "walnut", cmd.HandleMaterial())
		assert.Equal(t, "hidden-tang", cmd.HandleMount())
		assert.Equal(t, "2025-03-01", cmd.Deadline())
		assert.Nil(t, cmd.PhotoFileID())
	})

	t.Run("carries the photo reference when present", func(t *testing.T) {
		fileID := "AgACAgIAAxkBAAI"
		cmd, err := commands.NewCreateOrderCommand(
			"Chef 210", "Gyuto", "AEB-L", "satin", "walnut", "hidden-tang", "2025-03-01", &fileID)

		require.NoError(t, err)
		require.NotNil(t, cmd.PhotoFileID())
		assert.Equal(t, fileID, *cmd.PhotoFileID())
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "Gyuto", "AEB-L", "satin", "walnut", "hidden-tang", "2025-03-01", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewCreateOrderCommand("Chef 210", "Gyuto", "AEB-L", "satin", "walnut", "hidden-tang", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("joins every missing field into one error", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "", "", "", "", "", "", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "deadline")
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
