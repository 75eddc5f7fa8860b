// Package server owns the HTTP listener and the store handle for one
// service process and orders their shutdown.
//
// A Server moves through Starting, Listening, Draining and Closed. Shutdown
// stops accepting connections, waits for in-flight requests, and only then
// closes the store, so no request can observe a closed store handle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

type State int32

const (
	Starting State = iota
	Listening
	Draining
	Closed
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Listening:
		return "listening"
	case Draining:
		return "draining"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// storeCloseTimeout bounds the store disconnect independently of the drain
// deadline, which may already be spent.
const storeCloseTimeout = 5 * time.Second

// Store is the store handle released on shutdown.
type Store interface {
	Name() string
	Close(ctx context.Context) error
}

type Server struct {
	addr       string
	store      Store
	httpServer *http.Server

	mu       sync.Mutex
	state    State
	listener net.Listener

	// Handlers hold a read lock while running. Shutdown takes the write
	// lock before closing the store, which also covers handlers left
	// running after a forced close.
	handlers sync.RWMutex

	serveErr     chan error
	shutdownOnce sync.Once
	shutdownErr  error
}

func New(addr string, handler http.Handler, store Store) *Server {
	s := &Server{
		addr:     addr,
		store:    store,
		state:    Starting,
		serveErr: make(chan error, 1),
	}
	s.httpServer = &http.Server{Handler: s.track(handler), ReadHeaderTimeout: 10 * time.Second}
	return s
}

func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handlers.RLock()
		defer s.handlers.RUnlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Server) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Addr is the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	if s.State() != Starting {
		return errors.New("server already started")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.listener = listener
	s.state = Listening
	s.mu.Unlock()

	log.Info().Msgf("DATABASE IS CONNECTED: NAME => %s", s.store.Name())
	log.Info().Msgf("SERVER IS ONLINE => http://%s", listener.Addr())

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
		close(s.serveErr)
	}()
	return nil
}

// Shutdown drains the listener and then closes the store. Only the first
// call does any work; later calls return the first call's result.
// A store close failure is logged and not returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.shutdownErr = s.shutdown(ctx)
	})
	return s.shutdownErr
}

func (s *Server) shutdown(ctx context.Context) error {
	s.setState(Draining)
	log.Info().Msg("Shutting down server...")

	var drainErr error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		drainErr = fmt.Errorf("draining http server: %w", err)
		log.Error().Err(err).Msg("Drain did not finish, closing remaining connections")
		_ = s.httpServer.Close()
	}

	// Handlers cut off by Close still finish before the store goes away;
	// their request contexts are cancelled, so store calls return promptly.
	s.handlers.Lock()
	defer s.handlers.Unlock()

	log.Info().Msgf("DISCONNECT DATABASE: NAME => %s", s.store.Name())
	closeCtx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
	defer cancel()
	if err := s.store.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Error disconnecting database")
	}

	s.setState(Closed)
	return drainErr
}

// Run starts the server and blocks until ctx is done, SIGINT or SIGTERM
// arrives, or serving fails, then shuts down within shutdownTimeout.
// Signals stay captured until shutdown has finished, so repeated signals
// cannot interrupt the drain. The store is closed even when the listener
// cannot be bound.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := s.Start(); err != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
		defer cancel()
		if closeErr := s.store.Close(closeCtx); closeErr != nil {
			log.Error().Err(closeErr).Msg("Error disconnecting database")
		}
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Termination requested")
	case sig := <-signals:
		log.Info().Str("signal", sig.String()).Msg("Termination requested")
	case err, ok := <-s.serveErr:
		if ok {
			runErr = fmt.Errorf("serving http: %w", err)
			log.Error().Err(err).Msg("Server stopped unexpectedly")
		}
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-signals:
				log.Warn().Str("signal", sig.String()).Msg("Shutdown already in progress, ignoring signal")
			case <-done:
				return
			}
		}
	}()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
