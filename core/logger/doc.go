// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber context and attaches it to
// the log entry, so every line written while serving one request can be correlated. WithSession does
// the same for catalog view sessions, which outlive a single request.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Catalog loaded", zap.Int("items", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
