package hal

import (
	"math"
	"time"
)

// synthTone renders a sine tone with a linear fade-out as 16-bit little-endian stereo.
func synthTone(freqHz float64, d time.Duration, sampleRate int) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate)) * env
		s := int16(v * 0.8 * math.MaxInt16)
		j := i * 4
		out[j+0] = byte(s)
		out[j+1] = byte(s >> 8)
		out[j+2] = byte(s)
		out[j+3] = byte(s >> 8)
	}
	return out
}
