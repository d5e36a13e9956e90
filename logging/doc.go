// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing applications to
// plug any structured logger. The agent, router and executor emit key-value
// events through this interface; the default is NoOpLogger so library use
// stays silent unless a logger is wired in.
package logging
