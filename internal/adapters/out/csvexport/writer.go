// Package csvexport renders the full order book as a CSV document for the
// /export command.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"bladeshop/internal/core/application/usecases/queries"
)

// header lists every column in table order. Downstream spreadsheets key on
// these names, so the order is part of the format.
var header = []string{
	"id",
	"title",
	"model",
	"steel",
	"blade_finish",
	"handle_material",
	"handle_mount",
	"deadline",
	"status",
	"photo_file_id",
	"created_at",
}

// Write renders the given orders as CSV into w: a header row followed by one
// row per order. Missing photos become empty cells; timestamps use RFC 3339.
func Write(w io.Writer, orders []queries.ExportOrdersQueryResponse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, o := range orders {
		photo := ""
		if o.PhotoFileID != nil {
			photo = *o.PhotoFileID
		}

		record := []string{
			strconv.FormatInt(o.ID, 10),
			o.Title,
			o.Model,
			o.Steel,
			o.BladeFinish,
			o.HandleMaterial,
			o.HandleMount,
			o.Deadline,
			o.Status,
			photo,
			o.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
