// Package settings reads overlay preferences from .env files and the
// process environment.
//
//	OVERLAY_FPS=true
//	OVERLAY_REALTIME=false
//	OVERLAY_ORDER=realtime,fps
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	Prefix   = "OVERLAY_"
	OrderKey = Prefix + "ORDER"
)

// Source reports whether a counter should start enabled.
type Source interface {
	Enabled(name string) bool
}

type Settings struct {
	values map[string]string
}

func New(values map[string]string) *Settings {
	s := &Settings{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Load reads the given files in order, later files overriding earlier
// ones, then applies OVERLAY_* variables from the environment. Missing
// files are skipped.
func Load(paths ...string) (*Settings, error) {
	s := New(nil)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read overlay settings %s: %w", path, err)
		}
		for k, v := range values {
			s.values[k] = v
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, Prefix) {
			s.values[k] = v
		}
	}
	return s, nil
}

func Key(name string) string {
	return Prefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Enabled reports OVERLAY_<NAME> as a bool. Unset or malformed values
// are false.
func (s *Settings) Enabled(name string) bool {
	enabled, err := strconv.ParseBool(s.values[Key(name)])
	return err == nil && enabled
}

func (s *Settings) SetEnabled(name string, enabled bool) {
	s.values[Key(name)] = strconv.FormatBool(enabled)
}

// Order returns the counter names listed in OVERLAY_ORDER.
func (s *Settings) Order() []string {
	raw := s.values[OrderKey]
	if raw == "" {
		return nil
	}
	names := make([]string, 0)
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
