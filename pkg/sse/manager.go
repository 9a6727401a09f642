package sse

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Event is one server-sent notification.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type client struct {
	userID string
	ch     chan Event
}

type publication struct {
	userID string
	event  Event
}

// Manager fans session events out to connected clients per user. It lets
// the browser subscribe to one change feed instead of re-polling cookies
// on an interval.
type Manager struct {
	register   chan *client
	unregister chan *client
	publishCh  chan publication
	clients    map[string]map[*client]struct{}
}

func NewManager() *Manager {
	return &Manager{
		register:   make(chan *client),
		unregister: make(chan *client),
		publishCh:  make(chan publication, 16),
		clients:    make(map[string]map[*client]struct{}),
	}
}

// Run owns the client registry. Call it once from a goroutine.
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			if m.clients[c.userID] == nil {
				m.clients[c.userID] = make(map[*client]struct{})
			}
			m.clients[c.userID][c] = struct{}{}

		case c := <-m.unregister:
			if set, ok := m.clients[c.userID]; ok {
				delete(set, c)
				if len(set) == 0 {
					delete(m.clients, c.userID)
				}
				close(c.ch)
			}

		case p := <-m.publishCh:
			for c := range m.clients[p.userID] {
				select {
				case c.ch <- p.event:
				default:
					// Slow consumer, drop the event
				}
			}
		}
	}
}

// Publish sends an event to every connection of one user.
func (m *Manager) Publish(userID string, event Event) {
	m.publishCh <- publication{userID: userID, event: event}
}

// ServeHTTP streams events for the given user until the client goes away.
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	cl := &client{userID: userID, ch: make(chan Event, 8)}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	c.Writer.Flush()

	for {
		select {
		case event, ok := <-cl.ch:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.Type, data)
			c.Writer.Flush()

		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			c.Writer.Flush()

		case <-c.Request.Context().Done():
			return
		}
	}
}
