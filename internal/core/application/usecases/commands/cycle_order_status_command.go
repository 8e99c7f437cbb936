package commands

import (
	"errors"
	"fmt"

	"bladeshop/internal/pkg/errs"
	"bladeshop/internal/pkg/guard"
)

var ErrCycleOrderStatusCommandIsNotConstructed = errors.New(
	"CycleOrderStatusCommand must be created via NewCycleOrderStatusCommand constructor",
)

// CycleOrderStatusCommand requests one step of the fixed status rotation
// (new -> in_work -> done -> new) on a single order.
//
// Deliberately available to operators as well as administrators: marking
// fabrication progress is the operators' job.
type CycleOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCycleOrderStatusCommand creates a command to advance an order's status.
// Validates that the order ID is positive.
func NewCycleOrderStatusCommand(orderID int64) (CycleOrderStatusCommand, error) {
	cmd := CycleOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CycleOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CycleOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrCycleOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identity of the order to advance.
func (c CycleOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c *CycleOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is not a positive order ID", orderID))
	}

	c.orderID = orderID
	return nil
}
