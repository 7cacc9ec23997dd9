package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	handleTimeout  = 5 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Client pumps one websocket connection. ReadPump owns the session; WritePump
// owns all writes to the connection.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	session *Session
	logger  *zap.Logger

	send      chan []byte
	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, session *Session, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		hub:     hub,
		conn:    conn,
		session: session,
		logger:  logger,
		send:    make(chan []byte, sendBuffer),
	}
}

func (c *Client) SessionID() string {
	if c == nil || c.session == nil {
		return ""
	}
	return c.session.ID()
}

// Push queues an update. Updates are dropped when the client has stopped or
// its buffer is full.
func (c *Client) Push(u Update) {
	b, err := json.Marshal(u)
	if err != nil {
		c.logger.Error("encode update", zap.Error(err))
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- b:
	default:
		c.logger.Warn("update dropped", zap.String("session", c.SessionID()), zap.String("reason", "buffer_full"))
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) closeConn() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
	})
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.closeSend()
		c.closeConn()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read failed", zap.String("session", c.SessionID()), zap.Error(err))
			}
			return
		}

		u, err := c.handle(msg)
		if err != nil {
			c.Push(Update{Type: UpdateError, Session: c.SessionID(), Message: "session closed"})
			return
		}
		c.Push(u)
	}
}

// handle runs one event through the session. A panic ends this session only.
func (c *Client) handle(msg []byte) (u Update, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			wrapped := goerrors.Wrap(r, 2)
			c.logger.Error("panic recovered",
				zap.String("session", c.SessionID()),
				zap.String("error", wrapped.Error()),
				zap.String("stack", string(wrapped.Stack())),
			)
			err = wrapped
		}
	}()
	return c.session.Handle(ctx, msg), nil
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.closeConn()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
