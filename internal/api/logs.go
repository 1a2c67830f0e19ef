package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"clashview/internal/model"
)

const logStreamBuffer = 256

// StreamLogs opens the controller's websocket log stream at the given
// filter level and returns a channel of decoded entries. The channel is
// closed when the context is cancelled or the stream breaks; the caller
// decides whether to reconnect.
func (c *Client) StreamLogs(ctx context.Context, level model.LogLevel) (<-chan model.LogEntry, error) {
	u := c.baseURL.JoinPath("/logs")
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.RawQuery = url.Values{"level": {string(level)}}.Encode()

	header := http.Header{}
	c.authorize(header)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}

	out := make(chan model.LogEntry, logStreamBuffer)
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			var entry model.LogEntry
			if err := conn.ReadJSON(&entry); err != nil {
				return
			}
			select {
			case out <- entry:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Unblock the reader when the context ends.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	return out, nil
}
