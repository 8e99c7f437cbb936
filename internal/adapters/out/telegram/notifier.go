// Package telegram holds the chat-transport out-adapter: delivering
// workshop announcements to operators through the Bot API.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the slice of the Bot API client the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// OperatorNotifier announces freshly committed orders to every configured
// operator over the chat transport. Best effort: a failed send is logged
// and skipped so one blocked operator never hides the announcement from
// the rest, and a notification failure never fails order creation.
type OperatorNotifier struct {
	sender      Sender
	operatorIDs []int64
	logger      *slog.Logger
}

// NewOperatorNotifier creates a notifier that fans announcements out to the
// given operator chat identifiers.
func NewOperatorNotifier(sender Sender, operatorIDs []int64, logger *slog.Logger) *OperatorNotifier {
	return &OperatorNotifier{
		sender:      sender,
		operatorIDs: operatorIDs,
		logger:      logger.With("component", "operator_notifier"),
	}
}

// NotifyNewOrder announces a new order by its title and deadline text.
func (n *OperatorNotifier) NotifyNewOrder(ctx context.Context, title, deadline string) {
	text := fmt.Sprintf("🆕 Новый заказ: %s (дедлайн %s)", title, deadline)

	for _, operatorID := range n.operatorIDs {
		if _, err := n.sender.Send(tgbotapi.NewMessage(operatorID, text)); err != nil {
			n.logger.ErrorContext(ctx, "failed to notify operator",
				"operator_id", operatorID,
				"error", err)
		}
	}
}
