//go:build !tinygo && cgo

package hal

import (
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const hostSampleRate = 44100

// hostAudio plays short synthesized tones through Ebiten's audio package.
type hostAudio struct {
	mu    sync.Mutex
	ctx   *audio.Context
	tones map[toneKey][]byte
	live  []*audio.Player
	vol   float64
}

type toneKey struct {
	freq float64
	d    time.Duration
}

func newHostAudio() *hostAudio {
	return &hostAudio{tones: make(map[toneKey][]byte), vol: 0.25}
}

func (a *hostAudio) Blip(freqHz float64, d time.Duration) error {
	if freqHz <= 0 || d <= 0 {
		return errors.New("host audio: invalid tone")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// The context is process-wide in ebiten; create it on first use.
	if a.ctx == nil {
		a.ctx = audio.NewContext(hostSampleRate)
	}

	key := toneKey{freq: freqHz, d: d}
	pcm, ok := a.tones[key]
	if !ok {
		pcm = synthTone(freqHz, d, hostSampleRate)
		a.tones[key] = pcm
	}

	// Drop finished players so the slice stays short.
	live := a.live[:0]
	for _, p := range a.live {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	a.live = live

	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.vol)
	p.Play()
	a.live = append(a.live, p)
	return nil
}
