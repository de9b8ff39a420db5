// Live feedback stream (Server-Sent Events).
//
// This file exposes GET /feedback/stream: a long-lived SSE connection on which
// every connected dashboard receives created/deleted events for all sessions.
// There is no per-session filtering on the channel; clients filter locally.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-feedback-backend/internal/http/middleware"
)

// StreamFeedback godoc
// @ID          streamFeedback
// @Summary     Live feedback event stream
// @Description Server-Sent Events stream of feedback lifecycle events. Each message is a JSON object with a "type" of "created" (full record) or "deleted" (id only).
// @Tags        Feedback
// @Produce     text/event-stream
//
// @Success     200  {string} string "SSE stream"
// @Router      /feedback/stream [get]
func (h *Handlers) StreamFeedback(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	clientID := uuid.NewString()
	events := h.stream.Subscribe(clientID)
	defer h.stream.Unsubscribe(clientID)

	lg := middleware.LoggerFrom(c)
	lg.Info().
		Str("client_id", clientID).
		Int("subscribers", h.stream.SubscriberCount()).
		Msg("stream client connected")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-events:
			if !open {
				return false
			}
			data, err := json.Marshal(ev)
			if err != nil {
				lg.Error().Err(err).Msg("stream marshal error")
				return true
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			c.Writer.Flush()
			return true
		case <-c.Request.Context().Done():
			lg.Info().Str("client_id", clientID).Msg("stream client disconnected")
			return false
		}
	})
}
