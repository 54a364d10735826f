package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
)

var ErrServerAlreadyStarted = errors.New("http server already started")

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

type closeFunc func()

// Server runs the router on a TCP address until closed.
type Server struct {
	addr            string
	handler         http.Handler
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	boundAddr string
}

type serverConfig struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

type ServerOption func(*serverConfig)

func WithReadTimeout(d time.Duration) ServerOption {
	return func(c *serverConfig) {
		c.readTimeout = d
	}
}

func WithWriteTimeout(d time.Duration) ServerOption {
	return func(c *serverConfig) {
		c.writeTimeout = d
	}
}

// WithShutdownTimeout bounds how long Close waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(c *serverConfig) {
		c.shutdownTimeout = d
	}
}

func NewServer(addr string, handler http.Handler, opts ...ServerOption) *Server {
	cfg := serverConfig{
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		addr:            addr,
		handler:         handler,
		readTimeout:     cfg.readTimeout,
		writeTimeout:    cfg.writeTimeout,
		shutdownTimeout: cfg.shutdownTimeout,
	}
}

// Start binds the listener and serves in the background. Request contexts
// derive from ctx.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServerAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "http server stopped", "error", err)
		}
	}()

	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "http server shutdown", "error", err)
		}
		<-done
	}

	s.boundAddr = ln.Addr().String()
	s.isStarted = true
	logger.Info(ctx, "http server listening", "addr", s.boundAddr)
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.boundAddr
}

func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
	s.boundAddr = ""
}
