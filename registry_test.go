package overlaycounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&mockCounterType{name: "fps"})
	registry.Register(&mockCounterType{name: "realtime"})

	replacement := &mockCounterType{name: "fps", text: "new"}
	registry.Register(replacement)

	assert.Equal(t, []string{"fps", "realtime"}, registry.Names())

	got, ok := registry.Lookup("fps")
	require.True(t, ok)
	assert.Same(t, replacement, got)

	_, ok = registry.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryNamesIsACopy(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&mockCounterType{name: "a"})

	names := registry.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a"}, registry.Names())
}

func TestCounterOrders(t *testing.T) {
	names := []string{"fps", "realtime", "uptime", "goroutines"}

	assert.Equal(t, names, DefaultOrder(names))
	assert.Equal(t, []string{"uptime", "fps", "realtime", "goroutines"}, OrderBy("uptime", "fps", "uptime", "nope")(names))
	assert.Equal(t, []string{"goroutines", "fps"}, Only("goroutines", "fps")(names))
	assert.Equal(t, []string{"fps", "goroutines"}, Without("realtime", "uptime")(names))
	assert.Equal(t, []string{"fps", "realtime", "uptime", "goroutines"}, names, "strategies must not mutate their input")
}
