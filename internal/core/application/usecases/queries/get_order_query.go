package queries

import (
	"errors"
	"time"

	"bladeshop/internal/pkg/errs"
	"bladeshop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full card of a single order by its identifier.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order was deleted or never existed
//	}
type GetOrderQuery struct {
	guard guard.ConstructorGuard

	orderID int64
}

// NewGetOrderQuery creates a query for a single order card.
// Returns a validation error when orderID is not positive.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryResponse carries every stored field of one order.
// PhotoFileID is nil when no photo was attached at intake.
type GetOrderQueryResponse struct {
	ID             int64
	Title          string
	Model          string
	Steel          string
	BladeFinish    string
	HandleMaterial string
	HandleMount    string
	Deadline       string
	Status         string
	PhotoFileID    *string
	CreatedAt      time.Time
}
