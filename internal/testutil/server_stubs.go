package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// StubHTTPServer stands in for the server's listener in tests. ListenAndServe
// returns ListenErr immediately. When Block is set, Shutdown waits for it to
// close or for ctx to end.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

// NewFailingServer returns a stub whose ListenAndServe fails.
func NewFailingServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: errors.New("listen failure")}
}

// NewClosedServer returns a stub that reports a normal close from ListenAndServe.
func NewClosedServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: http.ErrServerClosed}
}

// NewBlockingServer returns a stub whose Shutdown blocks until unblock closes.
func NewBlockingServer(unblock chan struct{}) *StubHTTPServer {
	return &StubHTTPServer{Block: unblock}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Block != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Block:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}
