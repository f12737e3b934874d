package presence

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	subscriberBuffer = 8
	writeTimeout     = 5 * time.Second
)

// HubInterface fans presence views out to websocket subscribers so that
// consumers get updates pushed instead of re-polling the daemon.
type HubInterface interface {
	Notifier
	Subscribe(w http.ResponseWriter, r *http.Request)
	ClientCount() int
	Close()
}

type subscriber struct {
	ch chan models.PresenceView
}

type Hub struct {
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	closed      bool
	done        chan struct{}
}

func NewHub(logger providers.Logger, metrics providers.MetricsProviderInterface) HubInterface {
	return &Hub{
		logger:      logger,
		metrics:     metrics,
		subscribers: make(map[*subscriber]struct{}),
		done:        make(chan struct{}),
	}
}

// Broadcast never blocks: a subscriber that cannot keep up skips frames,
// the next view supersedes anything it missed.
func (h *Hub) Broadcast(view models.PresenceView) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers {
		select {
		case sub.ch <- view:
		default:
		}
	}
}

func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warnf(providers.TypeHTTP, "Websocket accept failed: %s", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	sub := &subscriber{ch: make(chan models.PresenceView, subscriberBuffer)}
	if !h.register(sub) {
		conn.Close(websocket.StatusGoingAway, "shutting down")
		return
	}
	defer h.unregister(sub)

	// CloseRead discards inbound frames and cancels the context when the
	// client goes away.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-h.done:
			conn.Close(websocket.StatusGoingAway, "shutting down")
			return
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case view := <-sub.ch:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, view)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Close refuses new subscribers and releases the ones currently connected.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
}

func (h *Hub) register(sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.subscribers[sub] = struct{}{}
	h.metrics.SetStreamClients(len(h.subscribers))
	return true
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscribers, sub)
	h.metrics.SetStreamClients(len(h.subscribers))
}
