package config

import (
	"fmt"
	"net"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP interface.
type ServerConfig struct {
	// ListenAddr enables the server when non-empty, e.g. ":8080"
	ListenAddr string

	// MaxDepth caps the depth a client may request
	MaxDepth int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{MaxDepth: 3}
}

// Validate checks that the listen address parses.
func (s *ServerConfig) Validate() error {
	if s.MaxDepth < 0 || s.MaxDepth > MaxDepth {
		return fmt.Errorf("server max depth %d outside [0,%d]: %w", s.MaxDepth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.ListenAddr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(s.ListenAddr); err != nil {
		return fmt.Errorf("listen address %q: %v: %w", s.ListenAddr, err, errors.ErrInvalidConfig)
	}
	return nil
}
