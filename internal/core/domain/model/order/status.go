package order

import (
	"fmt"

	"bladeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a fabrication order.
// It implements a fixed three-state rotation that is advanced on demand
// from the order list:
//
//	new ──> in_work ──> done ──> new ──> ...
//
// Status values are persisted as their string form, so the type is a string
// enum rather than an iota enum. A value read back from storage that is not
// one of the known states falls through to "new" on the next cycle; that
// catch-all keeps the rotation total over whatever the table contains.
type Status string

const (
	// StatusNew is the initial status assigned to every created order.
	StatusNew Status = "new"

	// StatusInWork indicates an operator has started fabrication.
	StatusInWork Status = "in_work"

	// StatusDone indicates fabrication is finished. Cycling a done order
	// starts it over at new.
	StatusDone Status = "done"
)

// getValidStatusStrings returns the set of statuses an order may legally carry.
func getValidStatusStrings() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNew:    {},
		StatusInWork: {},
		StatusDone:   {},
	}
}

// Validate checks if the Status value is one of the known states.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted form of the status.
// It implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// Cycle returns the next status in the fixed rotation.
//
// Transitions:
//   - new -> in_work
//   - in_work -> done
//   - done -> new
//   - anything else -> new (catch-all for unrecognized stored values)
//
// Cycling three times from any valid status returns the original value.
func (s Status) Cycle() Status {
	switch s {
	case StatusNew:
		return StatusInWork
	case StatusInWork:
		return StatusDone
	default:
		return StatusNew
	}
}
