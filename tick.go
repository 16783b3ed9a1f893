package overlaycounter

// Delay is the minimum time in milliseconds between caption rebuilds.
const Delay = 250

// tickMark records when the caption was last rebuilt. The zero value
// means never, so the next tick always rebuilds.
type tickMark struct {
	at  int64
	set bool
}

func never() tickMark {
	return tickMark{}
}

func at(ms int64) tickMark {
	return tickMark{at: ms, set: true}
}

// throttled reports whether a rebuild at now must be skipped.
func (t tickMark) throttled(now int64) bool {
	return t.set && now < t.at+Delay
}
