// Package websocket serves the question panel over a websocket connection.
// Each connection is an independent session; a new question supersedes the
// one still in flight, so the client only ever receives the answer to its
// latest question.
package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Question is one inbound message from the panel.
type Question struct {
	Question string              `json:"question"`
	History  []models.AskMessage `json:"history,omitempty"`
}

// Reply is one outbound message to the panel.
type Reply struct {
	Type   string `json:"type"` // "answer" or "error"
	ID     string `json:"id,omitempty"`
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Server upgrades ask-panel connections and runs a session per connection.
type Server struct {
	log logger.Logger
	ask services.AskServicer
}

// New creates a websocket server over the ask service.
func New(log logger.Logger, ask services.AskServicer) *Server {
	return &Server{log: log, ask: ask}
}

// session is the per-connection state.
type session struct {
	log  logger.Logger
	ask  services.AskServicer
	conn *websocket.Conn
	send chan Reply

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    int
}

// ServeWs handles one ask-panel websocket connection.
func (s *Server) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("WebSocket upgrade error", "error", err)
		return
	}

	sess := &session{
		log:  s.log,
		ask:  s.ask,
		conn: conn,
		send: make(chan Reply, 8),
	}
	go sess.writePump()
	go sess.readPump()
}

// readPump reads questions until the connection drops. Each question starts
// a fresh answer goroutine and cancels the previous one.
func (c *session) readPump() {
	defer func() {
		c.cancelInFlight()
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var q Question
		if err := c.conn.ReadJSON(&q); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Debug("WebSocket error", "error", err)
			}
			return
		}
		c.startQuestion(q)
	}
}

// startQuestion supersedes any in-flight question and answers the new one
// in the background.
func (c *session) startQuestion(q Question) {
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	go func() {
		ans, err := c.ask.Ask(ctx, q.Question, q.History)

		// Drop the reply if a newer question has taken over.
		c.mu.Lock()
		stale := seq != c.seq
		c.mu.Unlock()
		if stale || ctx.Err() != nil {
			return
		}

		reply := Reply{Type: "answer"}
		if err != nil {
			reply = Reply{Type: "error", Error: err.Error()}
		} else {
			reply.ID = ans.ID
			reply.Answer = ans.Answer
		}
		select {
		case c.send <- reply:
		default:
			c.log.Debug("WebSocket send buffer full, dropping reply")
		}
	}()
}

func (c *session) cancelInFlight() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
}

// writePump writes replies and keepalive pings to the connection.
func (c *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case reply := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(reply); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
