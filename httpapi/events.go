package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"switchboard/domain/event"
)

// streamEvents holds one SSE connection open and relays every event addressed
// to the authenticated user. Each connection is its own subscription: a user
// with several tabs open receives every event on each of them.
//
// A subscriber that falls behind loses its oldest buffered events; the gap is
// signaled in-band as a comment frame and the stream then continues. Clients
// are expected to refetch durable state after a gap.
func (s *Server) streamEvents(c *gin.Context) {
	user := currentUser(c)

	ch := s.registry.GetOrCreate(user.ID)
	sub := ch.Subscribe()
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	s.log.Debug("event stream opened", "user_id", user.ID, "subscribers", ch.Subscribers())
	defer s.log.Debug("event stream closed", "user_id", user.ID)

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return

		case <-keepAlive.C:
			// Comment frame; keeps proxies and the client from timing out
			// an idle stream.
			if _, err := fmt.Fprint(c.Writer, ": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()

		case e := <-sub.Events():
			if n := sub.Lagged(); n > 0 {
				if _, err := fmt.Fprintf(c.Writer, ": lagged, %d events dropped\n\n", n); err != nil {
					return
				}
			}
			payload, err := event.Encode(e)
			if err != nil {
				s.log.Error("failed to encode event", "type", string(e.Type()), "err", err)
				continue
			}
			if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
