package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	base := writeEnv(t, dir, ".env", "OVERLAY_FPS=true\nOVERLAY_REALTIME=1\nOVERLAY_ORDER=realtime, fps\n")
	local := writeEnv(t, dir, ".env.local", "OVERLAY_REALTIME=false\n")

	s, err := Load(base, local, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.True(t, s.Enabled("fps"))
	assert.False(t, s.Enabled("realtime"), "later files override earlier ones")
	assert.False(t, s.Enabled("uptime"))
	assert.Equal(t, []string{"realtime", "fps"}, s.Order())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeEnv(t, dir, ".env", "OVERLAY_UPTIME=false\n")
	t.Setenv("OVERLAY_UPTIME", "true")

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.Enabled("uptime"))
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeEnv(t, dir, ".env", "OVERLAY_FPS='unterminated\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	s := New(map[string]string{
		"OVERLAY_FPS":        "yes",
		"OVERLAY_NET_STATS":  "true",
		"OVERLAY_GOROUTINES": "TRUE",
	})

	assert.False(t, s.Enabled("fps"), "malformed bool is false")
	assert.True(t, s.Enabled("net-stats"))
	assert.True(t, s.Enabled("goroutines"))

	s.SetEnabled("fps", true)
	assert.True(t, s.Enabled("fps"))
}

func TestOrderEmpty(t *testing.T) {
	assert.Nil(t, New(nil).Order())
	assert.Empty(t, New(map[string]string{OrderKey: " , "}).Order())
}
