package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bharat-health-buddy/api/internal/middleware"
	"github.com/bharat-health-buddy/api/internal/model"
	"github.com/bharat-health-buddy/api/internal/queue"
	"github.com/bharat-health-buddy/api/internal/service"
)

// publishTimeout bounds a single event publish.
const publishTimeout = 5 * time.Second

// ChatPublisher ships chat events to the message broker.
type ChatPublisher interface {
	PublishChat(ctx context.Context, event queue.ChatReceivedEvent) error
}

// ChatHandler answers the placeholder chat endpoint.  The reply is a
// template echo of the request; no model is consulted.
type ChatHandler struct {
	Events ChatPublisher    // optional; nil disables event publication
	Now    func() time.Time // clock for event timestamps
}

// NewChatHandler constructs a ChatHandler.  events may be nil.
func NewChatHandler(events ChatPublisher) *ChatHandler {
	return &ChatHandler{Events: events, Now: time.Now}
}

// Chat handles POST /api/chat.  Fields are not validated: an absent field
// is rendered as "undefined" in the reply.  A body that is not JSON is
// treated as an empty request.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req model.ChatRequest
	if middleware.HasJSONBody(c) {
		if err := c.Bind(&req); err != nil {
			return err
		}
	}
	resp := req.Reply()
	if h.Events != nil {
		h.publish(service.NewChatEvent(req, resp, h.Now()))
	}
	return c.JSON(http.StatusOK, resp)
}

// publish sends the event in the background; the response never waits on
// the broker.
func (h *ChatHandler) publish(ev queue.ChatReceivedEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := h.Events.PublishChat(ctx, ev); err != nil {
			log.Printf("chat: event %s not published: %v", ev.ID, err)
		}
	}()
}
