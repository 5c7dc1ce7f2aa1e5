// Package server serves the interactive edit distance playground via HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// Server serves the playground on a single address.
type Server struct {
	http *http.Server
	errc chan error
}

// Run creates a new server and runs it in a new goroutine.
func Run(addr string) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	s := &Server{
		http: &http.Server{
			Handler: &handler{},
		},
		errc: make(chan error),
	}

	go func() {
		if err := s.http.Serve(l); err != nil && err != http.ErrServerClosed {
			s.errc <- err
		}
	}()

	return s, nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	close(s.errc)
	return nil
}

// Error returns a channel to listen to errors while serving.
func (s *Server) Error() <-chan error {
	return s.errc
}
