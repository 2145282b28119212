package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	subscriberSend = 16
	broadcastQueue = 256
)

type AvailabilityReader interface {
	Availability(ctx context.Context, id uint) (domain.Availability, error)
}

type subscriber struct {
	conn    *websocket.Conn
	send    chan []byte
	eventID uint
}

// AvailabilityHub fans out inventory changes to the websocket subscribers of each event.
// Run owns the subscriber maps; the mutex only lets Subscribers read them.
type AvailabilityHub struct {
	events   AvailabilityReader
	upgrader websocket.Upgrader

	mu          sync.RWMutex
	subscribers map[uint]map[*subscriber]struct{}

	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan domain.Availability
	done       chan struct{}
}

func NewAvailabilityHub(events AvailabilityReader, allowedOrigins []string) *AvailabilityHub {
	return &AvailabilityHub{
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		subscribers: make(map[uint]map[*subscriber]struct{}),
		register:    make(chan *subscriber),
		unregister:  make(chan *subscriber),
		broadcast:   make(chan domain.Availability, broadcastQueue),
		done:        make(chan struct{}),
	}
}

// Run processes subscriptions and broadcasts until ctx is done.
func (h *AvailabilityHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for eventID, subs := range h.subscribers {
				for sub := range subs {
					close(sub.send)
				}
				delete(h.subscribers, eventID)
			}
			h.mu.Unlock()
			return
		case sub := <-h.register:
			h.mu.Lock()
			if h.subscribers[sub.eventID] == nil {
				h.subscribers[sub.eventID] = make(map[*subscriber]struct{})
			}
			h.subscribers[sub.eventID][sub] = struct{}{}
			h.mu.Unlock()
		case sub := <-h.unregister:
			h.mu.Lock()
			h.remove(sub)
			h.mu.Unlock()
		case availability := <-h.broadcast:
			message, err := json.Marshal(availability)
			if err != nil {
				zap.L().Error("marshal availability", zap.Error(err))
				continue
			}
			h.mu.Lock()
			for sub := range h.subscribers[availability.EventID] {
				select {
				case sub.send <- message:
				default:
					// Slow subscriber.
					h.remove(sub)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *AvailabilityHub) remove(sub *subscriber) {
	subs, ok := h.subscribers[sub.eventID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, sub.eventID)
	}
}

// Publish queues a change without blocking the caller; changes are dropped when the queue is full.
func (h *AvailabilityHub) Publish(availability domain.Availability) {
	select {
	case h.broadcast <- availability:
	default:
		zap.L().Warn("availability queue full, dropping update", zap.Uint("event_id", availability.EventID))
	}
}

// Subscribers is the number of live connections watching eventID.
func (h *AvailabilityHub) Subscribers(eventID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[eventID])
}

// HandleWebSocket godoc
// @Summary      Live ticket availability of an approved event
// @Description  Upgrades to a websocket. The current availability is sent first, then every change.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event id"
// @Success      101      {object}  domain.Availability
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID}/availability/ws [get]
func (h *AvailabilityHub) HandleWebSocket(ctx *gin.Context) {
	id, respErr := parseID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	current, err := h.events.Availability(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "v1.HandleWebSocket -> h.events.Availability", err)
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Uint("event_id", id), zap.Error(err))
		return
	}

	sub := &subscriber{
		conn:    conn,
		send:    make(chan []byte, subscriberSend),
		eventID: id,
	}

	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	// Read again now that sub is registered: a booking between the first read and
	// registration would otherwise be missing from both the snapshot and the stream.
	if fresh, err := h.events.Availability(ctx.Request.Context(), id); err == nil {
		current = fresh
	} else {
		zap.L().Warn("availability re-read failed, sending earlier snapshot", zap.Uint("event_id", id), zap.Error(err))
	}
	snapshot, err := json.Marshal(current)
	if err != nil {
		zap.L().Error("marshal availability", zap.Error(err))
		h.drop(sub)
		return
	}

	// The snapshot goes out before writePump starts, so it precedes any queued change.
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
		zap.L().Debug("availability snapshot write failed", zap.Uint("event_id", id), zap.Error(err))
		h.drop(sub)
		return
	}

	go sub.writePump()
	go sub.readPump(h)
}

func (h *AvailabilityHub) drop(sub *subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
	sub.conn.Close()
}

func (s *subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages; it exists to notice the connection closing.
func (s *subscriber) readPump(h *AvailabilityHub) {
	defer h.drop(s)

	s.conn.SetReadLimit(512)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("availability subscriber closed", zap.Uint("event_id", s.eventID), zap.Error(err))
			}
			return
		}
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
