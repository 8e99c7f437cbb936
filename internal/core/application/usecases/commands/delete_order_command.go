package commands

import (
	"errors"
	"fmt"

	"bladeshop/internal/pkg/errs"
	"bladeshop/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests the permanent removal of one order.
// There is no confirmation step and no undo; the caller gate (administrators
// only) lives in the inbound adapter.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
// Validates that the order ID is positive.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to delete.
func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID int64) error {
	if orderID < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not a positive order ID", orderID))
	}

	c.orderID = orderID
	return nil
}
