package queries

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"bladeshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order card from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(42)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order by its identifier.
// Returns errs.ErrObjectNotFound when no order with that identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			model,
			steel,
			blade_finish,
			handle_material,
			handle_mount,
			deadline,
			status,
			photo_file_id,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var orderResp GetOrderQueryResponse
	err := row.Scan(
		&orderResp.ID,
		&orderResp.Title,
		&orderResp.Model,
		&orderResp.Steel,
		&orderResp.BladeFinish,
		&orderResp.HandleMaterial,
		&orderResp.HandleMount,
		&orderResp.Deadline,
		&orderResp.Status,
		&orderResp.PhotoFileID,
		&orderResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"order", strconv.FormatInt(query.OrderID(), 10))
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return orderResp, nil
}
