package overlaycounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetStringTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		tags Tags
		want string
	}{
		{"counter font", "FPS: 60", CounterTags, `[font="mono-stroke-14"]FPS: 60[/font]`},
		{"no tags", "plain", nil, "plain"},
		{"nested in key order", "x", Tags{"font": "sans-12", "color": "red"}, `[color="red"][font="sans-12"]x[/font][/color]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetStringTags(tt.text, tt.tags))
		})
	}
}

func TestStripTags(t *testing.T) {
	tagged := SetStringTags("Time: 12:00:00", CounterTags) + "\n" + SetStringTags("[x] ok", CounterTags)
	assert.Equal(t, "Time: 12:00:00\n[x] ok", StripTags(tagged, CounterTags))
	assert.Equal(t, "no markup", StripTags("no markup", CounterTags))
	assert.Equal(t, tagged, StripTags(tagged, nil))
}

func TestStripTagsKeepsLookalikeMarkup(t *testing.T) {
	line := `[a="x"]bold[/b] [font="sans-12"]`
	tagged := SetStringTags(line, CounterTags)

	assert.Equal(t, line, StripTags(tagged, CounterTags))
	assert.Equal(t, `x[font="mono-stroke-14"]`, StripTags(`[color="red"]x[font="mono-stroke-14"][/color]`, Tags{"color": "red"}))
}
