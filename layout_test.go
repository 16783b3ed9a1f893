package overlaycounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutBounds(t *testing.T) {
	base := Rect{Top: 5, Bottom: 500, Left: 0, Right: 1024}
	size := TextSize{Width: 120, Height: 48}

	assert.Equal(t, Rect{Top: 5, Bottom: 53, Left: 874, Right: 1024}, DefaultLayout.Bounds(base, size, 1))
	assert.Equal(t, Rect{Top: 5, Bottom: 50, Left: 874, Right: 1024}, DefaultLayout.Bounds(base, size, 3))

	plain := LayoutPolicy{LeftMargin: 2}
	assert.Equal(t, Rect{Top: 5, Bottom: 53, Left: 902, Right: 1024}, plain.Bounds(base, size, 3))
}
