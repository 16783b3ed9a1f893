package counters

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/yeeaiclub/overlaycounter/settings"
)

func NewRealtime(src settings.Source, now func() time.Time) *Type {
	if now == nil {
		now = time.Now
	}
	return &Type{
		name: Realtime,
		src:  src,
		text: func() string {
			return "Time: " + now().Format(time.TimeOnly)
		},
	}
}

// NewUptime counts from the moment the type is created.
func NewUptime(src settings.Source, now func() time.Time) *Type {
	if now == nil {
		now = time.Now
	}
	start := now()
	return &Type{
		name: Uptime,
		src:  src,
		text: func() string {
			return "Uptime: " + formatDuration(now().Sub(start))
		},
	}
}

func NewGoroutines(src settings.Source) *Type {
	return &Type{
		name: Goroutines,
		src:  src,
		text: func() string {
			return "Goroutines: " + strconv.Itoa(runtime.NumGoroutine())
		},
	}
}

func formatDuration(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
