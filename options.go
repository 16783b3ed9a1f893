package overlaycounter

import (
	"log/slog"
	"time"
)

type Option func(*Manager)

// WithClock replaces time.Now for the rebuild throttle.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithOrder sets the strategy that orders and filters counter names.
func WithOrder(order CounterOrder) Option {
	return func(m *Manager) {
		m.order = order
	}
}

func WithLayout(layout LayoutPolicy) Option {
	return func(m *Manager) {
		m.layout = layout
	}
}
