package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// client represents a connected client to the daemon
type client struct {
	id         string
	conn       net.Conn
	send       chan any
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.Mutex // Protects subscribed
	subscribed bool
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *client) isSubscribed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subscribed
}

// Server exposes the todo operations over a Unix domain socket. Every request
// is served on its own goroutine, so one slow store round-trip does not hold
// up other requests on the same or other connections.
type Server struct {
	socketPath       string
	listener         net.Listener
	todos            todoservice.Service
	bus              events.EventBus
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	metrics          *Metrics
	clientBufferSize int
	requests         sync.WaitGroup
	requestsMu       sync.Mutex // Guards requests.Add against Wait
	draining         bool
	shutdownOnce     sync.Once
}

// NewServer creates a new daemon server listening on socketPath
func NewServer(socketPath string, todos todoservice.Service, bus events.EventBus, clientBufferSize int) (*Server, error) {
	// Ensure the directory exists
	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	if clientBufferSize <= 0 {
		clientBufferSize = 10
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		todos:            todos,
		bus:              bus,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		metrics:          NewMetrics(),
		clientBufferSize: clientBufferSize,
	}, nil
}

// Metrics returns the live metrics of the server
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the daemon server until ctx is cancelled or Shutdown is called
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daemon starting", "socket_path", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-s.ctx.Done()
		cancel()
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	go s.forwardEvents(combinedCtx)

	select {
	case <-combinedCtx.Done():
		slog.Info("daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			slog.Error("accept loop error", "error", err)
		}
	}

	return s.Shutdown()
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Set a deadline so we can check for context cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			if err := ul.SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
				slog.Warn("error setting listener deadline", "error", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			id:   uuid.NewString(),
			conn: conn,
			send: make(chan any, s.clientBufferSize),
			done: make(chan struct{}),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		slog.Debug("client connected", "client_id", c.id, "total_clients", s.getClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// forwardEvents relays dbstatus events from the bus to subscribed clients
func (s *Server) forwardEvents(ctx context.Context) {
	ch := s.bus.Listen(ctx, events.EventDatabaseStatus)
	for event := range ch {
		msg := EventMessage{Event: event.Type, Payload: event.Payload}

		s.mu.RLock()
		for c := range s.clients {
			if !c.isSubscribed() {
				continue
			}
			// Non-blocking send - if client is slow, skip
			if s.trySend(c, msg) {
				s.metrics.IncEventsSent()
			} else {
				slog.Warn("client send queue full, event dropped", "client_id", c.id, "event", event.Type)
			}
		}
		s.mu.RUnlock()
	}
}

// handleClient reads requests from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		slog.Debug("client disconnected", "client_id", c.id, "total_clients", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			return
		}

		switch req.Cmd {
		case CmdSubscribe:
			c.mu.Lock()
			c.subscribed = true
			c.mu.Unlock()
			s.send(c, Response{ID: req.ID, OK: true})

		case CmdFrontReady:
			if err := s.bus.Emit(events.Event{Type: events.EventFrontReady}); err != nil {
				s.send(c, Response{ID: req.ID, Error: &ErrorPayload{Code: CodeStoreError, Message: err.Error()}})
				continue
			}
			s.send(c, Response{ID: req.ID, OK: true})

		case CmdMetrics:
			s.send(c, Response{ID: req.ID, OK: true, Data: s.metrics.GetSnapshot()})

		default:
			if !s.trackRequest() {
				return
			}
			go func(req Request) {
				defer s.requests.Done()
				s.send(c, s.dispatch(s.ctx, req))
			}(req)
		}
	}
}

// trackRequest registers an in-flight request. It reports false once the
// server has started draining.
func (s *Server) trackRequest() bool {
	s.requestsMu.Lock()
	defer s.requestsMu.Unlock()
	if s.draining {
		return false
	}
	s.requests.Add(1)
	return true
}

// dispatch runs one todo command and builds its response
func (s *Server) dispatch(ctx context.Context, req Request) Response {
	s.metrics.IncRequests()

	data, err := s.invoke(ctx, req)
	if err != nil {
		s.metrics.IncFailures()
		slog.Debug("request failed", "request_id", req.ID, "cmd", req.Cmd, "error", err)
		var payload *ErrorPayload
		var badReq *badRequestError
		switch {
		case errors.As(err, &badReq):
			payload = &ErrorPayload{Code: badReq.code, Message: badReq.Error()}
		default:
			payload = errorPayload(err)
		}
		return Response{ID: req.ID, Error: payload}
	}

	return Response{ID: req.ID, OK: true, Data: data}
}

func (s *Server) invoke(ctx context.Context, req Request) (any, error) {
	switch req.Cmd {
	case CmdAddTodo:
		var args addTodoArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		return s.todos.CreateTodo(ctx, args.Title, args.Description)

	case CmdGetTodos:
		return s.todos.GetTodos(ctx)

	case CmdUpdateTodo:
		var args updateTodoArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		if !args.Todo.Status.Valid() {
			return nil, &badRequestError{code: CodeBadRequest, msg: fmt.Sprintf("invalid args: %v", models.ErrInvalidStatus)}
		}
		return s.todos.UpdateTodo(ctx, args.Todo)

	case CmdDeleteTodo:
		var args deleteTodoArgs
		if err := decodeArgs(req.Args, &args); err != nil {
			return nil, err
		}
		return nil, s.todos.DeleteTodo(ctx, args.ID)

	default:
		return nil, &badRequestError{code: CodeUnknownCommand, msg: fmt.Sprintf("unknown command %q", req.Cmd)}
	}
}

type badRequestError struct {
	code string
	msg  string
}

func (e *badRequestError) Error() string {
	return e.msg
}

func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return &badRequestError{code: CodeBadRequest, msg: "missing args"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &badRequestError{code: CodeBadRequest, msg: fmt.Sprintf("invalid args: %v", err)}
	}
	return nil
}

// clientWriter sends messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for {
		select {
		case msg := <-c.send:
			if err := encoder.Encode(msg); err != nil {
				slog.Debug("client write failed", "client_id", c.id, "error", err)
				s.removeClient(c)
				return
			}
		case <-c.done:
			return
		}
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		slog.Info("shutting down daemon")

		s.cancel()

		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.Warn("error closing listener", "error", err)
		}

		s.mu.Lock()
		clients := make([]*client, 0, len(s.clients))
		for c := range s.clients {
			clients = append(clients, c)
		}
		s.mu.Unlock()

		for _, c := range clients {
			s.removeClient(c)
		}

		s.requestsMu.Lock()
		s.draining = true
		s.requestsMu.Unlock()
		s.requests.Wait()

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove socket file", "error", err)
		}
	})

	return nil
}

// Helper methods

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.getClientCount()))
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	_, present := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()

	if !present {
		return
	}

	c.close()
	if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		slog.Debug("error closing client connection", "error", err)
	}

	s.updateClientCount()
}

// send queues a response, waiting for room unless the client is gone
func (s *Server) send(c *client, msg any) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	}
}

// trySend attempts to queue a message without blocking
func (s *Server) trySend(c *client, msg any) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}
