package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-duel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-duel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-duel/internal/usecase"
)

const (
	DefaultPath = "/play"

	closeReasonSessionFull = "Player already connected"

	shutdownTimeout = 5 * time.Second
)

type coordinator interface {
	Connect(conn usecase.Connection) (entity.Slot, error)
	Disconnect(slot entity.Slot)
	HandleMessage(ctx context.Context, slot entity.Slot, message []byte) bool
}

type Options struct {
	Path           string
	SendBuffer     int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	MaxMessageSize int64
}

func (that Options) withDefaults() Options {
	if that.Path == "" {
		that.Path = DefaultPath
	}
	if that.SendBuffer < 1 {
		that.SendBuffer = 16
	}
	if that.WriteTimeout <= 0 {
		that.WriteTimeout = 10 * time.Second
	}
	if that.PongTimeout <= 0 {
		that.PongTimeout = 60 * time.Second
	}
	if that.MaxMessageSize <= 0 {
		that.MaxMessageSize = 512
	}

	return that
}

// pingPeriod must be shorter than PongTimeout.
func (that Options) pingPeriod() time.Duration {
	return that.PongTimeout * 9 / 10
}

type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	opts        Options
	upgrader    websocket.Upgrader
}

func New(logger *slog.Logger, coordinator coordinator, opts Options) *Server {
	return &Server{
		logger:      logger.With("component", "websocket"),
		coordinator: coordinator,
		opts:        opts.withDefaults(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Handler - returns the HTTP handler serving the game endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(that.opts.Path, func(w http.ResponseWriter, r *http.Request) {
		that.handlePlay(ctx, w, r)
	}).Methods(http.MethodGet)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(ctx),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// handlePlay - upgrades the request, assigns a player slot and serves the connection until it closes.
func (that *Server) handlePlay(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handlePlay", "remoteAddr", req.RemoteAddr)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	peer := newClient(that.logger, conn, that.opts)
	log = log.With("connectionID", peer.ID())

	slot, err := that.coordinator.Connect(peer)
	if errors.Is(err, apperror.ErrSessionFull) {
		log.Info("refusing connection, session is full")
		peer.refuse(websocket.CloseUnsupportedData, closeReasonSessionFull)
		return
	}

	if err != nil {
		log.Error("failed to connect player", "error", err)
		peer.refuse(websocket.CloseInternalServerErr, "")
		return
	}

	log = log.With("slot", slot)
	log.Info("WebSocket connection established")

	go peer.writePump()
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-peer.done:
		}
	}()

	peer.readPump(func(message []byte) {
		that.coordinator.HandleMessage(ctx, slot, message)
	})

	that.coordinator.Disconnect(slot)
	peer.close()

	log.Info("WebSocket connection closed")
}
