package telegram

import (
	"strconv"
	"strings"

	"bladeshop/internal/pkg/errs"
)

// ActionKind discriminates the inline keyboard actions.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionView
	ActionCycleStatus
	ActionDelete
)

// Action is one parsed inline keyboard callback: what to do and to which
// order. Unrecognized input never produces an Action; the parser fails
// closed so the dispatcher keeps a defined branch for garbage tokens.
type Action struct {
	Kind    ActionKind
	OrderID int64
}

// ParseAction parses a callback data token of the form "<verb>:<id>".
// Returns a validation error for unknown verbs, missing or non-numeric
// identifiers, and non-positive identifiers.
func ParseAction(data string) (Action, error) {
	verb, rawID, ok := strings.Cut(data, ":")
	if !ok {
		return Action{}, errs.NewValueIsInvalidError("callback data")
	}

	var kind ActionKind
	switch verb {
	case "view":
		kind = ActionView
	case "status":
		kind = ActionCycleStatus
	case "del":
		kind = ActionDelete
	default:
		return Action{}, errs.NewValueIsInvalidError("callback data")
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return Action{}, errs.NewValueIsInvalidErrorWithCause("callback data", err)
	}
	if id < 1 {
		return Action{}, errs.NewValueIsInvalidError("callback data")
	}

	return Action{Kind: kind, OrderID: id}, nil
}
