package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads order summaries straight from the database.
// Bypasses the domain model since no invariants apply to read-only listing.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results are sorted by deadline ascending so the most urgent work comes first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			deadline,
			status
		FROM orders
		ORDER BY deadline, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.Title,
			&orderResp.Deadline,
			&orderResp.Status,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
