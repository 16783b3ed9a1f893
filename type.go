package overlaycounter

// Rect is the bounding box of the overlay widget. Edges are independent.
type Rect struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// TextSize is the measured size of a caption.
type TextSize struct {
	Width  int
	Height int
}

// Widget is the host text box the manager populates and positions.
type Widget interface {
	Caption() string
	SetCaption(caption string)
	Size() Rect
	SetSize(size Rect)
	Hidden() bool
	SetHidden(hidden bool)

	// TextSize measures the current caption against the current size.
	TextSize() TextSize

	// SetOnTick installs the handler the host calls once per update.
	SetOnTick(onTick func())
}

// Counter is a source producing one line of overlay text per rebuild.
type Counter interface {
	// Get returns the line to show, or "" to contribute nothing this round.
	Get() string

	// UpdateEnabled is called once at registration so the counter can
	// report its initial state through Manager.SetCounterEnabled.
	UpdateEnabled()
}

// CounterType builds counters of one kind.
type CounterType interface {
	Name() string
	IsAvailable() bool
	New(m *Manager) Counter
}

// Available is embedded by counter types that are always available.
type Available struct{}

func (Available) IsAvailable() bool { return true }

// ResizeHandler receives the new overlay height.
type ResizeHandler func(height int)
