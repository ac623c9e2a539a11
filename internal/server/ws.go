package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/minimax-chess-go/internal/output"
)

const (
	// writeWait bounds a single websocket write.
	writeWait = 5 * time.Second

	// sendQueue is the number of positions a client may fall behind by
	// before it is dropped.
	sendQueue = 16
)

// client is one websocket subscriber. Broadcasts only queue onto out; a
// per-client writer goroutine owns the connection's write side.
type client struct {
	conn *websocket.Conn
	out  chan interface{}
	done chan struct{}
	once sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		out:  make(chan interface{}, sendQueue),
		done: make(chan struct{}),
	}
}

// push queues v without blocking. It reports false when the queue is full.
func (c *client) push(v interface{}) bool {
	select {
	case c.out <- v:
		return true
	default:
		return false
	}
}

// close stops the writer and closes the connection. Safe to call twice.
func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// writeLoop sends queued documents until the client is closed or a write
// fails or times out.
func (s *Server) writeLoop(c *client) {
	for {
		select {
		case v := <-c.out:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck // surfaced by WriteJSON
			if err := c.conn.WriteJSON(v); err != nil {
				s.cfg.Logf(1, "Websocket write to %s: %v\n", c.conn.RemoteAddr(), err)
				s.drop(c)
				return
			}
		case <-c.done:
			return
		}
	}
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		s.cfg.Logf(1, "Websocket upgrade from %s: %v\n", r.RemoteAddr, err)
		return
	}
	s.cfg.Logf(1, "New websocket connection from %s\n", conn.RemoteAddr())
	c := newClient(conn)

	// Register and queue the current position under mu so no change is
	// broadcast between the two.
	s.mu.Lock()
	s.clientsLock.Lock()
	s.clients[c] = struct{}{}
	s.clientsLock.Unlock()
	c.push(output.PositionToJSON(s.pos))
	s.mu.Unlock()

	go s.writeLoop(c)
	go func() {
		// Clients only listen; reading detects the close.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(c)
				return
			}
		}
	}()
}

// changed queues the position for every client. Callers hold s.mu. It never
// blocks on the network; a client whose queue is full is dropped.
func (s *Server) changed() {
	doc := output.PositionToJSON(s.pos)
	s.clientsLock.RLock()
	var slow []*client
	for c := range s.clients {
		if !c.push(doc) {
			slow = append(slow, c)
		}
	}
	s.clientsLock.RUnlock()
	for _, c := range slow {
		s.cfg.Logf(1, "Dropping websocket client %d positions behind\n", sendQueue)
		s.drop(c)
	}
}

// drop unregisters and closes a client.
func (s *Server) drop(c *client) {
	s.clientsLock.Lock()
	delete(s.clients, c)
	s.clientsLock.Unlock()
	c.close()
}

func (s *Server) closeClients() {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()
	for c := range s.clients {
		c.close()
		delete(s.clients, c)
	}
}

// NumClients reports the number of connected websocket clients.
func (s *Server) NumClients() int {
	s.clientsLock.RLock()
	defer s.clientsLock.RUnlock()
	return len(s.clients)
}
