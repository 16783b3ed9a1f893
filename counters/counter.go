// Package counters provides the stock overlay counters.
package counters

import (
	"time"

	"github.com/yeeaiclub/overlaycounter"
	"github.com/yeeaiclub/overlaycounter/settings"
)

const (
	FPS        = "fps"
	Realtime   = "realtime"
	Uptime     = "uptime"
	Goroutines = "goroutines"
)

// Type is a counter kind whose text is computed by a plain function.
type Type struct {
	name      string
	src       settings.Source
	text      func() string
	available func() bool
}

func (t *Type) Name() string { return t.name }

func (t *Type) IsAvailable() bool {
	return t.available == nil || t.available()
}

func (t *Type) New(m *overlaycounter.Manager) overlaycounter.Counter {
	return &Counter{name: t.name, m: m, src: t.src, text: t.text}
}

// Counter reads its enabled state from a settings.Source. Call
// UpdateEnabled again after the source changes.
type Counter struct {
	name string
	m    *overlaycounter.Manager
	src  settings.Source
	text func() string
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Get() string { return c.text() }

func (c *Counter) UpdateEnabled() {
	c.m.SetCounterEnabled(c, c.src.Enabled(c.name))
}

// Register adds the stock counters to reg in their default order. meter
// may be nil, in which case the fps counter is unavailable.
func Register(reg *overlaycounter.Registry, src settings.Source, meter *FrameMeter, now func() time.Time) {
	reg.Register(NewFPS(src, meter))
	reg.Register(NewRealtime(src, now))
	reg.Register(NewUptime(src, now))
	reg.Register(NewGoroutines(src))
}
