package overlaycounter

// LayoutPolicy turns a measured caption into widget bounds. The overlay
// stays pinned to its top-right corner and grows to the left and down.
type LayoutPolicy struct {
	// LeftMargin is added to the measured width.
	LeftMargin int

	// LineCompaction shrinks multi-line captions by one pixel per line.
	LineCompaction bool
}

// DefaultLayout is tuned for the mono-stroke-14 font.
var DefaultLayout = LayoutPolicy{
	LeftMargin:     30,
	LineCompaction: true,
}

// Bounds keeps top and right of base and derives left and bottom.
func (p LayoutPolicy) Bounds(base Rect, size TextSize, lineCount int) Rect {
	bounds := base
	bounds.Left = base.Right - size.Width - p.LeftMargin
	if lineCount == 1 || !p.LineCompaction {
		bounds.Bottom = base.Top + size.Height
	} else {
		bounds.Bottom = base.Top + size.Height - lineCount
	}
	return bounds
}
