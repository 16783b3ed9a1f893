package overlaycounter

import (
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Manager combines the enabled counters into the caption of a single
// overlay widget. It is driven by the widget's tick hook and is not safe
// for concurrent use.
//
// Resize handlers run inside OnTick. A handler that calls back into the
// manager (SetCounterEnabled, OnTick) leaves the tick state undefined.
type Manager struct {
	widget   Widget
	fullSize Rect

	counters       []Counter
	enabled        []Counter
	resizeHandlers []ResizeHandler

	lastTick   tickMark
	lastHeight int
	heightSet  bool

	now    func() time.Time
	logger *slog.Logger
	order  CounterOrder
	layout LayoutPolicy
}

// New instantiates every available counter type of registry bound to the
// returned manager and installs the manager's tick handler into widget.
func New(widget Widget, registry *Registry, opts ...Option) *Manager {
	m := &Manager{
		widget:         widget,
		counters:       make([]Counter, 0),
		enabled:        make([]Counter, 0),
		resizeHandlers: make([]ResizeHandler, 0),
		lastTick:       never(),
		now:            time.Now,
		logger:         slog.Default(),
		order:          DefaultOrder,
		layout:         DefaultLayout,
	}
	for _, opt := range opts {
		opt(m)
	}

	// Counters may enable themselves in UpdateEnabled, which rebuilds
	// against the full size right away.
	m.fullSize = widget.Size()

	if registry != nil {
		for _, name := range m.order(registry.Names()) {
			counterType, ok := registry.Lookup(name)
			if !ok {
				m.logger.Debug("overlay counter not registered", slog.String("counter", name))
				continue
			}
			if !counterType.IsAvailable() {
				m.logger.Debug("overlay counter unavailable", slog.String("counter", name))
				continue
			}

			counter := counterType.New(m)
			m.counters = append(m.counters, counter)
			counter.UpdateEnabled()
		}
	}

	widget.SetOnTick(m.OnTick)
	return m
}

// DeleteCounter removes counter from the manager. The caption is updated
// on the next tick that passes the throttle.
func (m *Manager) DeleteCounter(counter Counter) {
	m.counters = removeCounter(m.counters, counter)
	m.enabled = removeCounter(m.enabled, counter)
}

// SetCounterEnabled enables or disables counter, keeping the enabled
// counters in registration order, and rebuilds the caption immediately.
func (m *Manager) SetCounterEnabled(counter Counter, enabled bool) {
	if enabled {
		next := make([]Counter, 0, len(m.enabled)+1)
		for _, c := range m.counters {
			if c == counter || slices.Contains(m.enabled, c) {
				next = append(next, c)
			}
		}
		m.enabled = next
	} else {
		m.enabled = removeCounter(m.enabled, counter)
	}
	m.logger.Debug("overlay counter toggled", slog.Bool("enabled", enabled), slog.Int("active", len(m.enabled)))

	m.lastTick = never()
	m.OnTick()
}

// RegisterResizeHandler subscribes handler to overlay height changes.
func (m *Manager) RegisterResizeHandler(handler ResizeHandler) {
	m.resizeHandlers = append(m.resizeHandlers, handler)
}

// OnTick rebuilds the caption unless the last rebuild was less than
// Delay milliseconds ago.
func (m *Manager) OnTick() {
	now := m.now().UnixMilli()
	if m.lastTick.throttled(now) {
		return
	}
	m.lastTick = at(now)

	lineCount := 0
	var txt strings.Builder
	for _, counter := range m.enabled {
		line := counter.Get()
		if line == "" {
			continue
		}
		lineCount++
		txt.WriteString(SetStringTags(line, CounterTags))
		txt.WriteString("\n")
	}

	height := 0
	if lineCount > 0 {
		m.widget.SetCaption(txt.String())
		// Measuring inside the previous, smaller bounds would wrap lines
		// that fit the full overlay.
		m.widget.SetSize(m.fullSize)
		textSize := m.widget.TextSize()
		m.widget.SetSize(m.layout.Bounds(m.widget.Size(), textSize, lineCount))
		height = textSize.Height
	}

	m.widget.SetHidden(lineCount == 0)

	if m.heightSet && m.lastHeight == height {
		return
	}
	m.lastHeight = height
	m.heightSet = true
	m.logger.Debug("overlay resized", slog.Int("height", height), slog.Int("lines", lineCount))
	for _, handler := range m.resizeHandlers {
		handler(height)
	}
}

// Counters returns the registered counters in registration order.
func (m *Manager) Counters() []Counter {
	return slices.Clone(m.counters)
}

// EnabledCounters returns the enabled counters in registration order.
func (m *Manager) EnabledCounters() []Counter {
	return slices.Clone(m.enabled)
}

// Height returns the last computed overlay height, if any.
func (m *Manager) Height() (int, bool) {
	return m.lastHeight, m.heightSet
}

// removeCounter never modifies counters: OnTick may be ranging over it
// while a counter removes itself from Get.
func removeCounter(counters []Counter, counter Counter) []Counter {
	result := make([]Counter, 0, len(counters))
	for _, c := range counters {
		if c != counter {
			result = append(result, c)
		}
	}
	return result
}
