package app

import (
	"time"

	"bouncy/hal"
)

const (
	blipLength = 20 * time.Millisecond
	blipGap    = 0.060 // seconds
)

// blipper plays a short tone for bounces, at most once per blipGap.
type blipper struct {
	audio hal.Audio
	log   hal.Logger
	last  float64
	armed bool
	// failed stops further attempts after the first audio error.
	failed bool
}

// bounce plays a blip at time now if the previous one is old enough. It reports
// whether a tone was started.
func (b *blipper) bounce(now float64, walls int) bool {
	if b == nil || b.audio == nil || b.failed || walls <= 0 {
		return false
	}
	if b.armed && now-b.last < blipGap {
		return false
	}
	// Several flips in one frame sound a little higher.
	freq := 660.0
	if walls > 1 {
		freq = 880
	}
	if err := b.audio.Blip(freq, blipLength); err != nil {
		b.failed = true
		if b.log != nil {
			b.log.WriteLineString("sound disabled: " + err.Error())
		}
		return false
	}
	b.last = now
	b.armed = true
	return true
}
