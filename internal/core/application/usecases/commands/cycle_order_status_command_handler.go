package commands

import (
	"context"
)

// CycleOrderStatusCommandHandler advances an order one step in the fixed
// status rotation and persists the result.
//
// Example:
//
//	handler := NewCycleOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewCycleOrderStatusCommand(7)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrObjectNotFound when the order was deleted meanwhile
//	}
type CycleOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCycleOrderStatusCommandHandler creates a handler for status-cycle operations.
func NewCycleOrderStatusCommandHandler(uowFactory OrderUoWFactory) CycleOrderStatusCommandHandler {
	return CycleOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies one rotation step, and persists it.
// Returns an ObjectNotFoundError when the order no longer exists.
func (h *CycleOrderStatusCommandHandler) Handle(ctx context.Context, cmd CycleOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	existing.CycleStatus()

	if err = repo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
