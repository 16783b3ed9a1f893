package terminal

import (
	"strings"

	"github.com/yeeaiclub/overlaycounter"
)

// Screen is the part of a terminal the overlay widget draws on.
type Screen interface {
	GetSize() (int, int)
	Write(data string)
}

// Widget is an overlaycounter.Widget measured in terminal cells. Its
// full size is the top rows of the screen, right-aligned.
type Widget struct {
	screen  Screen
	caption string
	size    overlaycounter.Rect
	hidden  bool
	onTick  func()
	drawn   overlaycounter.Rect
}

// NewWidget covers the top rows of screen. rows <= 0 covers the whole screen.
func NewWidget(screen Screen, rows int) *Widget {
	width, height := screen.GetSize()
	if rows <= 0 || rows > height {
		rows = height
	}
	return &Widget{
		screen: screen,
		size:   overlaycounter.Rect{Top: 0, Bottom: rows, Left: 0, Right: width},
		hidden: true,
	}
}

func (w *Widget) Caption() string                  { return w.caption }
func (w *Widget) SetCaption(caption string)        { w.caption = caption }
func (w *Widget) Size() overlaycounter.Rect        { return w.size }
func (w *Widget) SetSize(size overlaycounter.Rect) { w.size = size }
func (w *Widget) Hidden() bool                     { return w.hidden }
func (w *Widget) SetHidden(hidden bool)            { w.hidden = hidden }
func (w *Widget) SetOnTick(onTick func())          { w.onTick = onTick }

func (w *Widget) lines() []string {
	text := strings.TrimSuffix(w.caption, "\n")
	if text == "" {
		return nil
	}
	return WrapText(text, w.size.Right-w.size.Left)
}

func (w *Widget) TextSize() overlaycounter.TextSize {
	lines := w.lines()
	size := overlaycounter.TextSize{Height: len(lines)}
	for _, line := range lines {
		size.Width = max(size.Width, VisibleWidth(line))
	}
	return size
}

// Tick runs the installed tick handler and redraws the overlay.
func (w *Widget) Tick() {
	if w.onTick != nil {
		w.onTick()
	}
	w.Draw()
}

// Draw blanks the previously drawn area and writes the caption inside
// the current bounds, each line right-aligned.
func (w *Widget) Draw() {
	var b strings.Builder
	b.WriteString("\x1b7")
	left := max(0, w.drawn.Left)
	for row := w.drawn.Top; row < w.drawn.Bottom; row++ {
		b.WriteString(cursorTo(row, left))
		b.WriteString(strings.Repeat(" ", max(0, w.drawn.Right-left)))
	}
	w.drawn = overlaycounter.Rect{}

	if !w.hidden {
		for i, line := range w.lines() {
			row := w.size.Top + i
			if row >= w.size.Bottom {
				break
			}
			b.WriteString(cursorTo(row, max(0, w.size.Right-VisibleWidth(line))))
			b.WriteString(line)
		}
		w.drawn = w.size
	}
	b.WriteString("\x1b8")
	w.screen.Write(b.String())
}
