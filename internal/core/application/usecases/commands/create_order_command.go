package commands

import (
	"errors"

	"bladeshop/internal/pkg/errs"
	"bladeshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a completed intake draft ready to become one
// order row. The seven text fields arrive verbatim from the intake session;
// the photo reference is nil when the administrator skipped the photo step.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Chef 210", "Gyuto", "AEB-L", "satin",
//	    "walnut", "hidden-tang", "2025-03-01", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	title          string
	model          string
	steel          string
	bladeFinish    string
	handleMaterial string
	handleMount    string
	deadline       string
	photoFileID    *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new fabrication order.
// Validates that every text field is non-empty. The deadline is accepted
// verbatim; it is not parsed here.
func NewCreateOrderCommand(
	title, model, steel, bladeFinish, handleMaterial, handleMount, deadline string,
	photoFileID *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		photoFileID: photoFileID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequired(&cmd.title, title, "title"),
		cmd.setRequired(&cmd.model, model, "model"),
		cmd.setRequired(&cmd.steel, steel, "steel"),
		cmd.setRequired(&cmd.bladeFinish, bladeFinish, "bladeFinish"),
		cmd.setRequired(&cmd.handleMaterial, handleMaterial, "handleMaterial"),
		cmd.setRequired(&cmd.handleMount, handleMount, "handleMount"),
		cmd.setRequired(&cmd.deadline, deadline, "deadline"),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Title returns the order title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Model returns the knife model.
func (c CreateOrderCommand) Model() string {
	return c.model
}

// Steel returns the steel grade.
func (c CreateOrderCommand) Steel() string {
	return c.steel
}

// BladeFinish returns the blade finish.
func (c CreateOrderCommand) BladeFinish() string {
	return c.bladeFinish
}

// HandleMaterial returns the handle material.
func (c CreateOrderCommand) HandleMaterial() string {
	return c.handleMaterial
}

// HandleMount returns the handle mount type.
func (c CreateOrderCommand) HandleMount() string {
	return c.handleMount
}

// Deadline returns the verbatim deadline text.
func (c CreateOrderCommand) Deadline() string {
	return c.deadline
}

// PhotoFileID returns the optional photo reference.
func (c CreateOrderCommand) PhotoFileID() *string {
	return c.photoFileID
}

func (c *CreateOrderCommand) setRequired(field *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*field = value
	return nil
}
