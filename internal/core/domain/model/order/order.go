package order

import (
	"errors"
	"fmt"
	"time"

	"bladeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identity. Order IDs are immutable.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is immutable once assigned")
)

// Order represents one custom fabrication job. It is the aggregate root of the
// system: created atomically by the intake flow, mutated only through the
// status cycle, and destroyed only by explicit deletion.
//
// Order follows these invariants:
//   - The seven specification fields (title, model, steel, blade finish,
//     handle material, handle mount, deadline) are non-empty
//   - The ID is assigned once, by the store at insert time, and never changes
//   - Status only changes through CycleStatus
//   - The deadline is captured verbatim at intake and has no update path
//   - Can only be created through NewOrder or RestoreOrder
//
// The deadline is free text. It is interpreted as a date only at read time,
// when the list rendering decides whether an order is overdue.
type Order struct {
	// id is the store-generated identity; zero until first persisted
	id int64

	title          string
	model          string
	steel          string
	bladeFinish    string
	handleMaterial string
	handleMount    string

	// deadline is the administrator's text, stored as-is
	deadline string

	// status is the current state in the fixed rotation
	status Status

	// photoFileID is the optional chat-transport attachment reference
	photoFileID *string

	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order from a completed intake draft. The order starts
// in StatusNew with createdAt set to the current time and no identity; the
// store assigns the ID at insert.
//
// All seven text fields must be non-empty; the photo reference is optional
// (nil means the administrator skipped the photo step).
//
// Example:
//
//	o, err := order.NewOrder("Chef 210", "Gyuto", "AEB-L", "satin",
//	    "walnut", "hidden-tang", "2025-03-01", nil)
//	if err != nil {
//	    // one of the required fields was empty
//	}
func NewOrder(
	title, model, steel, bladeFinish, handleMaterial, handleMount, deadline string,
	photoFileID *string,
) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		photoFileID:   photoFileID,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setTitle(title),
		o.setModel(model),
		o.setSteel(steel),
		o.setBladeFinish(bladeFinish),
		o.setHandleMaterial(handleMaterial),
		o.setHandleMount(handleMount),
		o.setDeadline(deadline),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from its persisted representation.
//
// Unlike NewOrder, the status is taken verbatim: rows written by older
// revisions may carry values outside the known set, and the rotation's
// catch-all sends those to StatusNew on the next cycle rather than
// failing rehydration.
func RestoreOrder(
	id int64,
	title, model, steel, bladeFinish, handleMaterial, handleMount, deadline string,
	status Status,
	photoFileID *string,
	createdAt time.Time,
) (*Order, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive order ID", id))
	}

	o := &Order{
		id:            id,
		status:        status,
		photoFileID:   photoFileID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setTitle(title),
		o.setModel(model),
		o.setSteel(steel),
		o.setBladeFinish(bladeFinish),
		o.setHandleMaterial(handleMaterial),
		o.setHandleMount(handleMount),
		o.setDeadline(deadline),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identity after the first insert.
// Returns ErrOrderIDAlreadyAssigned if the order already has an ID: order
// identity is immutable.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive order ID", id))
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by their persistent identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's identity, or zero if it has not been persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Model returns the knife model.
func (o *Order) Model() string {
	return o.model
}

// Steel returns the steel grade.
func (o *Order) Steel() string {
	return o.steel
}

// BladeFinish returns the blade finish.
func (o *Order) BladeFinish() string {
	return o.bladeFinish
}

// HandleMaterial returns the handle material.
func (o *Order) HandleMaterial() string {
	return o.handleMaterial
}

// HandleMount returns the handle mount type.
func (o *Order) HandleMount() string {
	return o.handleMount
}

// Deadline returns the deadline text exactly as the administrator entered it.
func (o *Order) Deadline() string {
	return o.deadline
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PhotoFileID returns the chat-transport photo reference.
// Returns nil if the administrator skipped the photo step.
func (o *Order) PhotoFileID() *string {
	return o.photoFileID
}

// CreatedAt returns the insert timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CycleStatus advances the status one step in the fixed rotation
// (new -> in_work -> done -> new). This is the only mutation an order
// supports after creation.
func (o *Order) CycleStatus() {
	o.status = o.status.Cycle()
}

func (o *Order) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func (o *Order) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	o.model = model
	return nil
}

func (o *Order) setSteel(steel string) error {
	if steel == "" {
		return errs.NewValueIsRequiredError("steel")
	}
	o.steel = steel
	return nil
}

func (o *Order) setBladeFinish(bladeFinish string) error {
	if bladeFinish == "" {
		return errs.NewValueIsRequiredError("bladeFinish")
	}
	o.bladeFinish = bladeFinish
	return nil
}

func (o *Order) setHandleMaterial(handleMaterial string) error {
	if handleMaterial == "" {
		return errs.NewValueIsRequiredError("handleMaterial")
	}
	o.handleMaterial = handleMaterial
	return nil
}

func (o *Order) setHandleMount(handleMount string) error {
	if handleMount == "" {
		return errs.NewValueIsRequiredError("handleMount")
	}
	o.handleMount = handleMount
	return nil
}

func (o *Order) setDeadline(deadline string) error {
	if deadline == "" {
		return errs.NewValueIsRequiredError("deadline")
	}
	o.deadline = deadline
	return nil
}
