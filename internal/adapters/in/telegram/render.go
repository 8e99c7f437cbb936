package telegram

import (
	"fmt"
	"time"

	"bladeshop/internal/core/application/usecases/queries"
	"bladeshop/internal/core/domain/model/order"
)

// RenderSummary formats one order as a list line: identifier and title on
// the first row, deadline and status on the second. Overdue orders carry a
// warning prefix. The deadline is compared against today as a calendar date;
// a deadline that does not parse is never overdue.
func RenderSummary(o queries.GetAllOrdersQueryResponse, today time.Time) string {
	overdue := ""
	if order.IsOverdue(o.Deadline, today) {
		overdue = "⚠️ "
	}

	return fmt.Sprintf("%s#%d %s\n📅 %s | %s", overdue, o.ID, o.Title, o.Deadline, o.Status)
}

// RenderDetail formats the full order card shown by the view action.
func RenderDetail(o queries.GetOrderQueryResponse) string {
	return fmt.Sprintf(
		"🧾 %s\n"+
			"Модель: %s\n"+
			"Сталь: %s\n"+
			"Финиш: %s\n"+
			"Рукоять: %s\n"+
			"Монтаж: %s\n"+
			"Дедлайн: %s\n"+
			"Статус: %s",
		o.Title, o.Model, o.Steel, o.BladeFinish,
		o.HandleMaterial, o.HandleMount, o.Deadline, o.Status,
	)
}
