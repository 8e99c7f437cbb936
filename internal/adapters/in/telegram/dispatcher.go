// Package telegram is the chat in-adapter: it receives Bot API updates and
// translates them into commands and queries against the application layer.
// The adapter layer holds all chat-facing texts and keyboards; persistence
// stays behind the application handlers.
package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bladeshop/internal/adapters/out/csvexport"
	"bladeshop/internal/core/application/usecases/commands"
	"bladeshop/internal/core/application/usecases/queries"
	"bladeshop/internal/core/domain/model/intake"
	"bladeshop/internal/core/domain/model/kernel"
	"bladeshop/internal/core/domain/services"
	"bladeshop/internal/core/ports"
	"bladeshop/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Reply texts shown to chat participants.
const (
	msgAdminPanel    = "👑 Админ-панель\n\n/add — добавить заказ\n/orders — все заказы\n/export — экспорт CSV"
	msgOperatorPanel = "🛠 Мастер\n\n/orders — список заказов"
	msgNoAccess      = "⛔ Нет доступа"
	msgOrderAdded    = "✅ Заказ добавлен"
	msgStatusCycled  = "🔄 Статус обновлён"
	msgOrderDeleted  = "❌ Заказ удалён"
	msgOrderNotFound = "🤷 Заказ не найден"
	msgUnknownAction = "🤷 Неизвестное действие"
	msgIntakeAborted = "🚫 Ввод заказа отменён"
	msgTryAgain      = "⚠️ Что-то пошло не так, попробуй ещё раз"
)

// Bot is the slice of the Bot API client the dispatcher needs: Send for
// messages, documents and photos, Request for callback acknowledgements.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Dispatcher routes incoming chat updates to the application layer.
// Every branch of the routing is total: unrecognized commands, malformed
// callback tokens and out-of-flow messages all land in a defined handler
// instead of crashing or stalling.
type Dispatcher struct {
	bot      Bot
	policy   *services.AccessPolicy
	sessions ports.SessionStore

	createOrder commands.CreateOrderCommandHandler
	cycleStatus commands.CycleOrderStatusCommandHandler
	deleteOrder commands.DeleteOrderCommandHandler

	getAllOrders queries.GetAllOrdersQueryHandler
	getOrder     queries.GetOrderQueryHandler
	exportOrders queries.ExportOrdersQueryHandler

	now    func() time.Time
	logger *slog.Logger
}

// NewDispatcher wires the chat routing against the application layer.
func NewDispatcher(
	bot Bot,
	policy *services.AccessPolicy,
	sessions ports.SessionStore,
	createOrder commands.CreateOrderCommandHandler,
	cycleStatus commands.CycleOrderStatusCommandHandler,
	deleteOrder commands.DeleteOrderCommandHandler,
	getAllOrders queries.GetAllOrdersQueryHandler,
	getOrder queries.GetOrderQueryHandler,
	exportOrders queries.ExportOrdersQueryHandler,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		bot:          bot,
		policy:       policy,
		sessions:     sessions,
		createOrder:  createOrder,
		cycleStatus:  cycleStatus,
		deleteOrder:  deleteOrder,
		getAllOrders: getAllOrders,
		getOrder:     getOrder,
		exportOrders: exportOrders,
		now:          time.Now,
		logger:       logger.With("component", "dispatcher"),
	}
}

// Dispatch routes one incoming update. Never returns an error: every failure
// is either answered in chat or logged, so the webhook always acknowledges.
func (d *Dispatcher) Dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			d.handleStart(ctx, userID, chatID)
		case "add":
			d.handleAdd(ctx, userID, chatID)
		case "orders":
			d.handleOrders(ctx, userID, chatID)
		case "export":
			d.handleExport(ctx, userID, chatID)
		case "skip":
			d.handleSkip(ctx, userID, chatID)
		case "cancel":
			d.handleCancel(ctx, userID, chatID)
		default:
			d.logger.InfoContext(ctx, "ignoring unknown command",
				"command", msg.Command(), "user_id", userID)
		}
		return
	}

	if len(msg.Photo) > 0 {
		d.handlePhoto(ctx, userID, chatID, msg.Photo)
		return
	}

	if msg.Text != "" {
		d.handleText(ctx, userID, chatID, msg.Text)
	}
}

func (d *Dispatcher) handleStart(ctx context.Context, userID, chatID int64) {
	var text string
	switch d.policy.RoleOf(userID) {
	case services.RoleAdministrator:
		text = msgAdminPanel
	case services.RoleOperator:
		text = msgOperatorPanel
	default:
		text = msgNoAccess
	}

	d.reply(ctx, chatID, text)
}

func (d *Dispatcher) handleAdd(ctx context.Context, userID, chatID int64) {
	if !d.policy.IsAdministrator(userID) {
		d.reply(ctx, chatID, msgNoAccess)
		return
	}

	session, err := intake.NewSession(userID, chatID)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to start intake session", "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	// Starting the flow twice deliberately discards the first attempt.
	d.sessions.Put(session)
	d.reply(ctx, chatID, session.Stage().Prompt())
}

func (d *Dispatcher) handleText(ctx context.Context, userID, chatID int64, text string) {
	session, ok := d.sessions.Get(userID, chatID)
	if !ok {
		return
	}

	if err := session.Apply(text); err != nil {
		if errors.Is(err, intake.ErrAwaitingPhoto) {
			d.reply(ctx, chatID, intake.StagePhoto.Prompt())
			return
		}

		d.logger.WarnContext(ctx, "rejected intake input",
			"session_id", session.ID().String(), "error", err)
		d.reply(ctx, chatID, session.Stage().Prompt())
		return
	}

	d.reply(ctx, chatID, session.Stage().Prompt())
}

func (d *Dispatcher) handlePhoto(ctx context.Context, userID, chatID int64, photos []tgbotapi.PhotoSize) {
	session, ok := d.sessions.Get(userID, chatID)
	if !ok {
		return
	}

	// Telegram sends several sizes of the same photo; keep the largest.
	fileID := photos[len(photos)-1].FileID

	if err := session.AttachPhoto(fileID); err != nil {
		d.logger.WarnContext(ctx, "rejected photo",
			"session_id", session.ID().String(), "error", err)
		d.reply(ctx, chatID, session.Stage().Prompt())
		return
	}

	d.commitSession(ctx, session)
}

func (d *Dispatcher) handleSkip(ctx context.Context, userID, chatID int64) {
	session, ok := d.sessions.Get(userID, chatID)
	if !ok {
		return
	}

	if err := session.SkipPhoto(); err != nil {
		d.logger.WarnContext(ctx, "rejected skip",
			"session_id", session.ID().String(), "error", err)
		d.reply(ctx, chatID, session.Stage().Prompt())
		return
	}

	d.commitSession(ctx, session)
}

func (d *Dispatcher) handleCancel(ctx context.Context, userID, chatID int64) {
	if _, ok := d.sessions.Get(userID, chatID); !ok {
		return
	}

	d.sessions.Delete(userID, chatID)
	d.reply(ctx, chatID, msgIntakeAborted)
}

// commitSession turns a completed intake session into one committed order.
// The session is discarded on success and kept on failure so the admin can
// retry the last step.
func (d *Dispatcher) commitSession(ctx context.Context, session *intake.Session) {
	draft, err := session.Draft()
	if err != nil {
		d.logger.ErrorContext(ctx, "intake session completed without full draft",
			"session_id", session.ID().String(), "error", err)
		d.reply(ctx, session.ChatID(), msgTryAgain)
		return
	}

	cmd, err := commands.NewCreateOrderCommand(
		draft.Title, draft.Model, draft.Steel, draft.BladeFinish,
		draft.HandleMaterial, draft.HandleMount, draft.Deadline, draft.PhotoFileID,
	)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to build create order command",
			"session_id", session.ID().String(), "error", err)
		d.reply(ctx, session.ChatID(), msgTryAgain)
		return
	}

	if err := d.createOrder.Handle(ctx, cmd); err != nil {
		d.logger.ErrorContext(ctx, "failed to create order",
			"session_id", session.ID().String(), "error", err)
		d.reply(ctx, session.ChatID(), msgTryAgain)
		return
	}

	d.sessions.Delete(session.AdminID(), session.ChatID())
	d.reply(ctx, session.ChatID(), msgOrderAdded)
}

func (d *Dispatcher) handleOrders(ctx context.Context, userID, chatID int64) {
	if d.policy.RoleOf(userID) == services.RoleNone {
		d.reply(ctx, chatID, msgNoAccess)
		return
	}

	orders, err := d.getAllOrders.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to list orders", "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	today := d.now()
	for _, o := range orders {
		msg := tgbotapi.NewMessage(chatID, RenderSummary(o, today))
		msg.ReplyMarkup = orderKeyboard(o.ID)
		d.send(ctx, msg)
	}
}

func (d *Dispatcher) handleExport(ctx context.Context, userID, chatID int64) {
	if !d.policy.IsAdministrator(userID) {
		d.reply(ctx, chatID, msgNoAccess)
		return
	}

	orders, err := d.exportOrders.Handle(ctx, queries.NewExportOrdersQuery())
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to export orders", "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	var buf bytes.Buffer
	if err := csvexport.Write(&buf, orders); err != nil {
		d.logger.ErrorContext(ctx, "failed to render export", "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("orders-%s.csv", kernel.NewUUID().String()),
		Bytes: buf.Bytes(),
	})
	d.send(ctx, doc)
}

func (d *Dispatcher) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Acknowledge first so the client stops its spinner even when the
	// action itself fails.
	if _, err := d.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		d.logger.WarnContext(ctx, "failed to answer callback query", "error", err)
	}

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	action, err := ParseAction(query.Data)
	if err != nil {
		d.logger.WarnContext(ctx, "malformed callback data",
			"data", query.Data, "user_id", query.From.ID, "error", err)
		d.reply(ctx, chatID, msgUnknownAction)
		return
	}

	switch action.Kind {
	case ActionView:
		d.handleView(ctx, chatID, action.OrderID)
	case ActionCycleStatus:
		d.handleCycleStatus(ctx, chatID, action.OrderID)
	case ActionDelete:
		d.handleDelete(ctx, query.From.ID, chatID, action.OrderID)
	}
}

func (d *Dispatcher) handleView(ctx context.Context, chatID, orderID int64) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		d.reply(ctx, chatID, msgUnknownAction)
		return
	}

	o, err := d.getOrder.Handle(ctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.reply(ctx, chatID, msgOrderNotFound)
			return
		}

		d.logger.ErrorContext(ctx, "failed to view order", "order_id", orderID, "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	text := RenderDetail(o)
	if o.PhotoFileID != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(*o.PhotoFileID))
		photo.Caption = text
		d.send(ctx, photo)
		return
	}

	d.reply(ctx, chatID, text)
}

// handleCycleStatus rotates an order's status. Deliberately open to anyone
// who can see the keyboard: operators mark progress on their own work.
func (d *Dispatcher) handleCycleStatus(ctx context.Context, chatID, orderID int64) {
	cmd, err := commands.NewCycleOrderStatusCommand(orderID)
	if err != nil {
		d.reply(ctx, chatID, msgUnknownAction)
		return
	}

	if err := d.cycleStatus.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.reply(ctx, chatID, msgOrderNotFound)
			return
		}

		d.logger.ErrorContext(ctx, "failed to cycle order status", "order_id", orderID, "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	d.reply(ctx, chatID, msgStatusCycled)
}

func (d *Dispatcher) handleDelete(ctx context.Context, userID, chatID, orderID int64) {
	if !d.policy.IsAdministrator(userID) {
		d.reply(ctx, chatID, msgNoAccess)
		return
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		d.reply(ctx, chatID, msgUnknownAction)
		return
	}

	if err := d.deleteOrder.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.reply(ctx, chatID, msgOrderNotFound)
			return
		}

		d.logger.ErrorContext(ctx, "failed to delete order", "order_id", orderID, "error", err)
		d.reply(ctx, chatID, msgTryAgain)
		return
	}

	d.reply(ctx, chatID, msgOrderDeleted)
}

func orderKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👁", fmt.Sprintf("view:%d", orderID)),
			tgbotapi.NewInlineKeyboardButtonData("🔄", fmt.Sprintf("status:%d", orderID)),
			tgbotapi.NewInlineKeyboardButtonData("❌", fmt.Sprintf("del:%d", orderID)),
		),
	)
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, text string) {
	d.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (d *Dispatcher) send(ctx context.Context, c tgbotapi.Chattable) {
	if _, err := d.bot.Send(c); err != nil {
		d.logger.ErrorContext(ctx, "failed to send chat message", "error", err)
	}
}
