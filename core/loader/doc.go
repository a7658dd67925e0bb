// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is enabled and registers
// its routes when loaded.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager, created with NewManager(logger), holds the registry of features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll(), logging the ones that are skipped
//
// The catalog feature is always enabled; the preferences feature only when a database is configured.
package loader
