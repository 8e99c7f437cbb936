package queries

import (
	"errors"
	"time"

	"bladeshop/internal/pkg/guard"
)

var (
	ErrExportOrdersQueryIsNotConstructed = errors.New(
		"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
	)
)

// ExportOrdersQuery retrieves every stored field of every order for export.
// Unlike GetAllOrdersQuery it returns full rows, not summaries.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates a query for a full order export.
func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// ExportOrdersQueryResponse is one full order row for export.
type ExportOrdersQueryResponse struct {
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
