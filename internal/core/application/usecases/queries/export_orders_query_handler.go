package queries

import (
	"context"

	"gorm.io/gorm"
)

// ExportOrdersQueryHandler reads full order rows for export from the database.
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewExportOrdersQueryHandler creates a handler for order export queries.
// Requires a GORM database connection for query execution.
func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with every stored field.
// Results are sorted by identifier so exports are reproducible.
func (h ExportOrdersQueryHandler) Handle(
	ctx context.Context,
	query ExportOrdersQuery,
) ([]ExportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ExportOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp ExportOrdersQueryResponse

		err = rows.Scan(
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
