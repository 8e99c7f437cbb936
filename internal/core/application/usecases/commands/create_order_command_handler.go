package commands

import (
	"context"

	"bladeshop/internal/core/domain/model/order"
	"bladeshop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Inserts exactly one row in "new" status inside a transaction, then fans the
// announcement out to the workshop operators.
//
// The notification step runs after the commit and is best-effort by contract:
// a failed send never fails the command or rolls the order back.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a Notifier for
// the operator fan-out.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command.
// Creates the order in "new" status, persists it, commits, then notifies
// operators with the title and deadline.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.Title(),
		cmd.Model(),
		cmd.Steel(),
		cmd.BladeFinish(),
		cmd.HandleMaterial(),
		cmd.HandleMount(),
		cmd.Deadline(),
		cmd.PhotoFileID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyNewOrder(ctx, newOrder.Title(), newOrder.Deadline())
	return nil
}
