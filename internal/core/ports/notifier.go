package ports

import "context"

// Notifier delivers new-order announcements to the fixed set of workshop
// operators.
//
// The contract is strictly best-effort: implementations never return an
// error, never panic, and must not block the caller's commit path beyond
// the sends themselves. Failed sends are logged for observability and
// otherwise dropped — a notification failure must never fail order creation.
type Notifier interface {
	// NotifyNewOrder announces a freshly committed order, identified by its
	// title and deadline text, to every configured operator.
	NotifyNewOrder(ctx context.Context, title, deadline string)
}
