// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"bladeshop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is generated by the store on insert; the deadline stays a
// plain string since it is stored verbatim as entered.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	Title          string
	Model          string
	Steel          string
	BladeFinish    string
	HandleMaterial string
	HandleMount    string
	Deadline       string `gorm:"index"`
	Status         string `gorm:"index"`
	PhotoFileID    *string
	CreatedAt      time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID(),
		Title:          aggregate.Title(),
		Model:          aggregate.Model(),
		Steel:          aggregate.Steel(),
		BladeFinish:    aggregate.BladeFinish(),
		HandleMaterial: aggregate.HandleMaterial(),
		HandleMount:    aggregate.HandleMount(),
		Deadline:       aggregate.Deadline(),
		Status:         aggregate.Status().String(),
		PhotoFileID:    aggregate.PhotoFileID(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which accepts the stored status verbatim.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.Title,
		dto.Model,
		dto.Steel,
		dto.BladeFinish,
		dto.HandleMaterial,
		dto.HandleMount,
		dto.Deadline,
		order.Status(dto.Status),
		dto.PhotoFileID,
		dto.CreatedAt,
	)
}
