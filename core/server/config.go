package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadTimeoutSeconds bounds how long a request body may take to arrive.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15"`
}

// ListenAddr returns the address passed to fiber's Listen.
func (c Config) ListenAddr() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// ReadTimeout returns the configured read timeout, falling back to 15s.
func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}
