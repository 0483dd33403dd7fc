package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
)

// client is one connected peer. Outbound snapshots are queued on send and written by
// writePump, so Send never waits on the network.
type client struct {
	id     string
	logger *slog.Logger
	conn   *websocket.Conn
	opts   Options

	mu     sync.Mutex
	send   chan []byte
	closed bool

	done chan struct{}
}

func newClient(logger *slog.Logger, conn *websocket.Conn, opts Options) *client {
	id := uuid.NewString()

	return &client{
		id:     id,
		logger: logger.With("connectionID", id),
		conn:   conn,
		opts:   opts,
		send:   make(chan []byte, opts.SendBuffer),
		done:   make(chan struct{}),
	}
}

func (that *client) ID() string {
	return that.id
}

// Send queues the payload. It fails when the client is closed or its buffer is full.
func (that *client) Send(payload []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return apperror.ErrConnectionClosed
	}

	select {
	case that.send <- payload:
		return nil
	default:
		return apperror.ErrSendBufferFull
	}
}

// close stops accepting payloads; writePump drains the queue and closes the socket.
func (that *client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	close(that.send)
	close(that.done)
}

// refuse closes the socket with the given code before any game interaction.
func (that *client) refuse(code int, reason string) {
	message := websocket.FormatCloseMessage(code, reason)
	if err := that.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(that.opts.WriteTimeout)); err != nil {
		that.logger.Warn("failed to send close frame", "error", err)
	}

	_ = that.conn.Close()
}

// readPump delivers text frames to handle until the connection breaks.
func (that *client) readPump(handle func(message []byte)) {
	log := that.logger.With("method", "readPump")

	that.conn.SetReadLimit(that.opts.MaxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(that.opts.PongTimeout))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(that.opts.PongTimeout))
	})

	for {
		messageType, message, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				log.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		handle(message)
	}
}

// writePump writes queued payloads one frame each and keeps the connection alive with pings.
func (that *client) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(that.opts.pingPeriod())
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.opts.WriteTimeout))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Warn("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.opts.WriteTimeout))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn("failed to write ping", "error", err)
				return
			}
		}
	}
}
