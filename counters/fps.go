package counters

import (
	"strconv"
	"time"

	"github.com/yeeaiclub/overlaycounter/settings"
)

const frameWindow = time.Second

// FrameMeter counts frames over the last second. The host calls Frame
// once per rendered frame.
type FrameMeter struct {
	now    func() time.Time
	frames []time.Time
}

func NewFrameMeter(now func() time.Time) *FrameMeter {
	if now == nil {
		now = time.Now
	}
	return &FrameMeter{now: now}
}

func (fm *FrameMeter) Frame() {
	now := fm.now()
	fm.frames = append(fm.frames, now)
	fm.trim(now)
}

// Rate returns the number of frames seen in the last second.
func (fm *FrameMeter) Rate() int {
	fm.trim(fm.now())
	return len(fm.frames)
}

func (fm *FrameMeter) trim(now time.Time) {
	cutoff := now.Add(-frameWindow)
	i := 0
	for i < len(fm.frames) && !fm.frames[i].After(cutoff) {
		i++
	}
	fm.frames = fm.frames[i:]
}

func NewFPS(src settings.Source, meter *FrameMeter) *Type {
	return &Type{
		name: FPS,
		src:  src,
		text: func() string {
			return "FPS: " + strconv.Itoa(meter.Rate())
		},
		available: func() bool {
			return meter != nil
		},
	}
}
