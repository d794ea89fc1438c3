package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"tokencore/core/events"
)

const wsWriteTimeout = 10 * time.Second

// broadcastEmitter fans every emitted event out to subscribed WebSocket
// clients, one channel per subscriber. It is meant to be wired in as the
// host.Runtime's configured emitter (or
// one branch of a fan-out emitter alongside the indexer) so it only ever
// observes events a Dispatch has actually committed — never one a
// reverted call buffered and discarded.
type broadcastEmitter struct {
	mu          sync.Mutex
	subscribers map[chan events.Event]struct{}
}

// NewBroadcastEmitter constructs a broadcastEmitter for WebSocket fan-out.
// Pass the result to both NewServer and, wrapped in a fan-out with any
// other emitters (e.g. the indexer), to host.NewRuntime.
func NewBroadcastEmitter() *broadcastEmitter {
	return &broadcastEmitter{subscribers: make(map[chan events.Event]struct{})}
}

// Emit implements events.Emitter by handing e to every current subscriber
// without blocking on a slow one.
func (b *broadcastEmitter) Emit(e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- e:
		default:
		}
	}
}

func (b *broadcastEmitter) subscribe() chan events.Event {
	ch := make(chan events.Event, 64)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *broadcastEmitter) unsubscribe(ch chan events.Event) {
	b.mu.Lock()
	delete(b.subscribers, ch)
	b.mu.Unlock()
	close(ch)
}

// handleEventStream upgrades the connection to a WebSocket and streams
// every TokenCore event as one JSON text message per event until the
// client disconnects.
func (s *Server) handleEventStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "stream closed")

	ch := s.broadcast.subscribe()
	defer s.broadcast.unsubscribe(ch)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := writeEvent(ctx, conn, event); err != nil {
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, event events.Event) error {
	data, err := json.Marshal(event.ToEnvelope())
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
