package overlaycounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickMark(t *testing.T) {
	assert.False(t, never().throttled(0), "never rebuilt always proceeds")
	assert.False(t, never().throttled(-1))

	last := at(1000)
	assert.True(t, last.throttled(1000))
	assert.True(t, last.throttled(1000+Delay-1))
	assert.False(t, last.throttled(1000+Delay))
	assert.True(t, last.throttled(500), "clock going backwards stays throttled")
}
