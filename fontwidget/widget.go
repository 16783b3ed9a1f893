// Package fontwidget is a pixel overlay widget that measures and draws
// captions with a golang.org/x/image font face.
package fontwidget

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/yeeaiclub/overlaycounter"
)

var (
	DefaultForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultBackground = color.RGBA{A: 0x99}
)

type Widget struct {
	face       font.Face
	caption    string
	size       overlaycounter.Rect
	hidden     bool
	onTick     func()
	Foreground color.Color
	Background color.Color
}

// New returns a widget occupying size. A nil face selects basicfont.Face7x13.
func New(face font.Face, size overlaycounter.Rect) *Widget {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Widget{
		face:       face,
		size:       size,
		hidden:     true,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

func (w *Widget) Caption() string                  { return w.caption }
func (w *Widget) SetCaption(caption string)        { w.caption = caption }
func (w *Widget) Size() overlaycounter.Rect        { return w.size }
func (w *Widget) SetSize(size overlaycounter.Rect) { w.size = size }
func (w *Widget) Hidden() bool                     { return w.hidden }
func (w *Widget) SetHidden(hidden bool)            { w.hidden = hidden }
func (w *Widget) SetOnTick(onTick func())          { w.onTick = onTick }

// Tick runs the installed tick handler. Call it once per frame.
func (w *Widget) Tick() {
	if w.onTick != nil {
		w.onTick()
	}
}

func (w *Widget) lineHeight() int {
	return w.face.Metrics().Height.Ceil()
}

func (w *Widget) measure(s string) int {
	return font.MeasureString(w.face, s).Ceil()
}

// lines splits the caption into rendered lines, wrapping at word
// boundaries where a line is wider than the widget.
func (w *Widget) lines() []string {
	text := strings.TrimSuffix(overlaycounter.StripTags(w.caption, overlaycounter.CounterTags), "\n")
	if text == "" {
		return nil
	}
	maxWidth := w.size.Right - w.size.Left

	var result []string
	for _, line := range strings.Split(text, "\n") {
		if maxWidth <= 0 || w.measure(line) <= maxWidth {
			result = append(result, line)
			continue
		}
		current := ""
		for _, word := range strings.Fields(line) {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if current != "" && w.measure(candidate) > maxWidth {
				result = append(result, current)
				current = word
				continue
			}
			current = candidate
		}
		result = append(result, current)
	}
	return result
}

func (w *Widget) TextSize() overlaycounter.TextSize {
	lines := w.lines()
	size := overlaycounter.TextSize{Height: len(lines) * w.lineHeight()}
	for _, line := range lines {
		size.Width = max(size.Width, w.measure(line))
	}
	return size
}

func (w *Widget) Bounds() image.Rectangle {
	return image.Rect(w.size.Left, w.size.Top, w.size.Right, w.size.Bottom)
}

// Render draws the overlay onto dst, lines right-aligned to the right edge.
func (w *Widget) Render(dst draw.Image) {
	if w.hidden {
		return
	}
	bounds := w.Bounds().Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}
	draw.Draw(dst, bounds, image.NewUniform(w.Background), image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(w.Foreground),
		Face: w.face,
	}
	ascent := w.face.Metrics().Ascent.Ceil()
	for i, line := range w.lines() {
		x := w.size.Right - w.measure(line)
		y := w.size.Top + i*w.lineHeight() + ascent
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(line)
	}
}
