package realtime

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "realtime")
}

const clientQueueSize = 16

// Hub fans help-request change events out to every live feed subscription.
// All hub state is owned by the Run goroutine; the exported methods only
// touch channels.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan ChangeEvent
	done       chan struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan ChangeEvent),
		done:       make(chan struct{}),
	}
}

// Run owns the subscriber set until ctx is cancelled. Subscribers whose send
// queue is full are dropped rather than allowed to stall the fan-out.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				log.WithError(err).Error("marshal change event")
				continue
			}

			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}

		case <-ctx.Done():
			// closing done unblocks every sender before the loop stops
			// draining its channels
			close(h.done)
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

// Broadcast queues a change event for delivery to every subscriber. After
// shutdown the event is discarded instead of blocking the caller.
func (h *Hub) Broadcast(event ChangeEvent) {
	select {
	case h.broadcast <- event:
	case <-h.done:
	}
}

// ServeConn attaches a websocket connection as a feed subscriber and blocks
// until the peer goes away. The subscription is released on every exit path.
func (h *Hub) ServeConn(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, clientQueueSize),
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		conn.Close()
	}()

	go c.writePump()

	// the peer never sends data; the read loop only detects disconnection
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.WithError(err).Warn("ws write error")
			c.conn.Close()
			return
		}
	}

	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
	c.conn.Close()
}
