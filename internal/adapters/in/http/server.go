// Package http exposes the web surface: the Bot API webhook endpoint and a
// health probe.
package http

import (
	"context"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
)

// UpdateDispatcher consumes one incoming chat update.
type UpdateDispatcher interface {
	Dispatch(ctx context.Context, update tgbotapi.Update)
}

// Server routes HTTP requests: webhook POSTs carry Bot API updates, the
// health endpoint serves liveness probes.
type Server struct {
	dispatcher UpdateDispatcher
}

// NewServer creates the HTTP server around the given dispatcher.
func NewServer(dispatcher UpdateDispatcher) *Server {
	return &Server{dispatcher: dispatcher}
}

// Register attaches the routes to an echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/webhook", s.HandleWebhook)
	e.GET("/health", s.HandleHealth)
}

// HandleWebhook accepts one Bot API update. Always answers 200 once the body
// parses: failures inside the dispatch are answered in chat or logged, and a
// non-2xx response would only make the Bot API redeliver the same update.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	var update tgbotapi.Update
	if err := ctx.Bind(&update); err != nil {
		return ctx.NoContent(http.StatusBadRequest)
	}

	s.dispatcher.Dispatch(ctx.Request().Context(), update)
	return ctx.NoContent(http.StatusOK)
}

// HandleHealth serves the liveness probe.
func (s *Server) HandleHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
