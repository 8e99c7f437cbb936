package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bothttp "bladeshop/internal/adapters/in/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	updates []tgbotapi.Update
}

func (d *recordingDispatcher) Dispatch(_ context.Context, update tgbotapi.Update) {
	d.updates = append(d.updates, update)
}

func newTestServer(dispatcher bothttp.UpdateDispatcher) *echo.Echo {
	e := echo.New()
	bothttp.NewServer(dispatcher).Register(e)
	return e
}

func TestHandleWebhook_DispatchesParsedUpdate(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	e := newTestServer(dispatcher)

	body := `{"update_id":7,"message":{"message_id":1,"text":"/start","chat":{"id":-100200300},"from":{"id":380617987}}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dispatcher.updates, 1)

	update := dispatcher.updates[0]
	require.NotNil(t, update.Message)
	assert.Equal(t, "/start", update.Message.Text)
	assert.Equal(t, int64(-100200300), update.Message.Chat.ID)
	assert.Equal(t, int64(380617987), update.Message.From.ID)
}

func TestHandleWebhook_MalformedBody_Returns400WithoutDispatch(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	e := newTestServer(dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, dispatcher.updates)
}

func TestHandleHealth_ReturnsHealthy(t *testing.T) {
	e := newTestServer(&recordingDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
