package network

import (
	"time"

	"github.com/lixenwraith/vape/parameter"
)

// Config holds spectator server configuration
type Config struct {
	// Address to bind; empty disables the spectator server
	Address string

	// Connection limits
	MaxClients int

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns defaults with the server disabled
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		MaxClients:      32,
		WriteTimeout:    parameter.SpectatorWriteTimeout,
		PongTimeout:     30 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   parameter.SpectatorSendQueue,
	}
}

// Enabled reports whether an address is configured
func (c *Config) Enabled() bool {
	return c != nil && c.Address != ""
}
