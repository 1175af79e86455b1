// Package server exposes the simulation over WebSocket: JSON commands in,
// state frames out, with a fixed-interval tick loop driving committed
// movement.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/simplehero/dungeon/internal/config"
	"github.com/simplehero/dungeon/internal/database"
	"github.com/simplehero/dungeon/internal/game"
	"github.com/simplehero/dungeon/internal/items"
	"github.com/simplehero/dungeon/internal/logger"
	"github.com/simplehero/dungeon/internal/room"
)

// Server owns the game state and fans frames out to connected clients.
// All state access goes through s.mu; the tick loop and every client
// session share the one state object.
type Server struct {
	cfg       *config.ServerConfig
	templates *room.Catalog
	items     *items.Catalog
	db        *database.Database

	mu    sync.Mutex
	state *game.State
	tick  uint64

	clientsMu sync.Mutex
	clients   map[*WebSocketClient]bool

	done chan struct{}
}

// New creates a Server around an existing game state. db may be nil when
// no save store is configured.
func New(cfg *config.ServerConfig, templates *room.Catalog, itemCatalog *items.Catalog, state *game.State, db *database.Database) *Server {
	return &Server{
		cfg:       cfg,
		templates: templates,
		items:     itemCatalog,
		db:        db,
		state:     state,
		clients:   make(map[*WebSocketClient]bool),
		done:      make(chan struct{}),
	}
}

// Start runs the tick loop and serves WebSocket connections on the
// configured address. It blocks until the listener fails.
func (s *Server) Start() error {
	go s.runTicker()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)

	logger.Info("server listening", "address", s.cfg.Listen.Addr)
	return http.ListenAndServe(s.cfg.Listen.Addr, mux)
}

// Stop terminates the tick loop.
func (s *Server) Stop() {
	close(s.done)
}

// runTicker advances committed movement one tile per tick and pushes the
// resulting frame to every client when something moved.
func (s *Server) runTicker() {
	interval := time.Duration(s.cfg.Game.TickMillis) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.tick++
			moved, err := s.state.Step()
			var frame StateFrame
			if moved {
				frame = s.buildFrameLocked()
			}
			s.mu.Unlock()

			if err != nil {
				logger.Error("movement step failed", "error", err)
			}
			if moved {
				s.broadcast(frame)
			}
		}
	}
}

// broadcast sends a frame to all connected clients, dropping clients whose
// connection has failed.
func (s *Server) broadcast(frame StateFrame) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for client := range s.clients {
		if err := client.WriteJSON(frame); err != nil {
			logger.Debug("dropping client", "remote_addr", client.RemoteAddr(), "error", err)
			client.Close()
			delete(s.clients, client)
		}
	}
}

// handleWebSocketUpgrade upgrades an HTTP connection and hands it to a
// session goroutine.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("connection rejected, origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := NewWebSocketClient(wsConn)
	client.SetReadLimit(s.cfg.WebSocket.MaxMessageSize)

	s.clientsMu.Lock()
	s.clients[client] = true
	s.clientsMu.Unlock()

	go s.handleClient(client)
}

// handleClient runs one client session: an initial state frame, then a
// command/response loop until the connection drops.
func (s *Server) handleClient(client *WebSocketClient) {
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, client)
		s.clientsMu.Unlock()
		client.Close()
	}()

	logger.Info("client connected", "remote_addr", client.RemoteAddr())

	s.mu.Lock()
	frame := s.buildFrameLocked()
	s.mu.Unlock()
	if err := client.WriteJSON(frame); err != nil {
		return
	}

	for {
		message, err := client.ReadMessage()
		if err != nil {
			logger.Info("client disconnected", "remote_addr", client.RemoteAddr())
			return
		}

		response := s.handleMessage(message)
		if response == nil {
			continue
		}
		if err := client.WriteJSON(response); err != nil {
			return
		}
	}
}
