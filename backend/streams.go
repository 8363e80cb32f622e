package backend

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Connect health checks the backend and subscribes to its event streams.
// Concurrent calls collapse into one attempt; a failed attempt schedules a
// retry and returns the error. The passed context outlives the call: it is
// the parent of the stream subscriptions and of all future reconnects.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusConnected || c.connecting {
		c.mu.Unlock()
		return nil
	}
	c.connecting = true
	c.parentCtx = ctx
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
	c.mu.Unlock()

	info, err := c.GetInfo(ctx)
	if err != nil {
		log.Warnf("Could not connect to backend, retrying in %s: %v", c.reconnectInterval, err)

		c.mu.Lock()
		c.connecting = false
		c.retryTimer = time.AfterFunc(c.reconnectInterval, func() {
			_ = c.Connect(ctx)
		})
		c.mu.Unlock()

		return err
	}

	streamCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.connecting = false
	c.status = StatusConnected
	c.streamCancel = cancel
	c.mu.Unlock()

	log.Infof("Connected to backend version %s", info.Version)
	c.notifyStatus(StatusConnected)

	go streamEvents(streamCtx, c, "/stream/transactions", c.txEvents)
	go streamEvents(streamCtx, c, "/stream/invoices", c.invoiceEvents)
	go streamEvents(streamCtx, c, "/stream/claims", c.claimEvents)
	go streamEvents(streamCtx, c, "/stream/refunds", c.refundEvents)
	go streamEvents(streamCtx, c, "/stream/channelbackups", c.channelBackups)

	return nil
}

// Disconnect tears down the streams and stops any pending reconnect.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
	if c.streamCancel != nil {
		c.streamCancel()
		c.streamCancel = nil
	}
	wasConnected := c.status == StatusConnected
	c.status = StatusDisconnected
	c.connecting = false
	c.mu.Unlock()

	if wasConnected {
		c.notifyStatus(StatusDisconnected)
	}
}

// streamEvents subscribes to one WebSocket stream and forwards its decoded
// events until the stream context is cancelled or the connection drops.
func streamEvents[E any](ctx context.Context, c *Client, path string, out chan<- E) {
	header := http.Header{}
	if c.macaroon != "" {
		header.Set(macaroonHeader, c.macaroon)
	}

	conn, _, err := websocket.Dial(ctx, c.endpoint+path, &websocket.DialOptions{
		HTTPClient: c.httpClient,
		HTTPHeader: header,
	})
	if err != nil {
		c.handleStreamError(ctx, path, err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	for {
		var event E
		if err := wsjson.Read(ctx, conn, &event); err != nil {
			c.handleStreamError(ctx, path, err)
			return
		}

		select {
		case out <- event:
		case <-ctx.Done():
			return
		}
	}
}

// handleStreamError funnels every stream failure into a single reconnect.
// The first stream to fail flips the connection state, cancels its siblings
// and arms the retry timer; everyone else finds the state flipped already
// and returns. Reconnecting through the timer also throttles the case where
// the health check passes but the stream endpoints keep rejecting dials.
func (c *Client) handleStreamError(ctx context.Context, path string, err error) {
	if ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	if c.status != StatusConnected {
		c.mu.Unlock()
		return
	}
	c.status = StatusDisconnected
	if c.streamCancel != nil {
		c.streamCancel()
		c.streamCancel = nil
	}
	parentCtx := c.parentCtx
	if c.retryTimer != nil {
		c.retryTimer.Stop()
	}
	c.retryTimer = time.AfterFunc(c.reconnectInterval, func() {
		_ = c.Connect(parentCtx)
	})
	c.mu.Unlock()

	log.Errorf("Lost backend stream %s, reconnecting in %s: %v", path, c.reconnectInterval, err)
	c.notifyStatus(StatusDisconnected)
}
