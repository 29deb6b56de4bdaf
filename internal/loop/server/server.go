// Package server tracks the terminal clients connected to one process so
// they can be counted and told about a shutdown. Every client plays its own
// independent session; nothing about gameplay is shared.
package server

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Lobby is the interface clients use to announce themselves.
// Decouples the Client from the concrete Server implementation.
type Lobby interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	Players() int
}

// Server keeps the set of connected clients.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	log          *log.Logger
}

// Compile-time check that Server implements Lobby.
var _ Lobby = (*Server)(nil)

// ClientHandle represents a client's registration with the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to the client
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates an empty server. A nil logger discards.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		log:          logger,
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.log.Warn("shutdown timed out", "remaining", s.Players())
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	s.log.Debug("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client. Unknown IDs are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[clientID]; !ok {
		return
	}
	delete(s.clients, clientID)
	s.log.Debug("client unregistered", "id", clientID, "players", len(s.clients))
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
