//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Window WindowConfig
	Hz     int
	Ticks  uint64
	// Pace sleeps between frames at Hz; otherwise frames run back to back.
	Pace bool
	// Keys are applied at the start of the given frame.
	Keys []ScriptedKey
	// Done, if set, receives the framebuffer after the last frame.
	Done func(fb Framebuffer)
}

// ScriptedKey changes the held state of a key at a frame number (1-based).
type ScriptedKey struct {
	Tick uint64
	Code KeyCode
	Down bool
}

// RunHeadless runs the app without opening a window. Every frame advances the clock
// by exactly 1/Hz seconds. When Ticks is reached or ctx is done, a close request is
// raised and the app gets one more frame to shut down.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp AppFactory) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Window.withDefaults(), newFixedClock(cfg.Hz), nil)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	if step == nil {
		return nil
	}
	defer func() {
		if cfg.Done != nil {
			cfg.Done(h.fb)
		}
	}()

	var tc <-chan time.Time
	if cfg.Pace {
		t := time.NewTicker(d)
		defer t.Stop()
		tc = t.C
	}

	var tick, closeTick uint64
	for {
		if tc != nil {
			select {
			case <-ctx.Done():
				h.win.RequestClose()
			case <-tc:
			}
		} else if ctx.Err() != nil {
			h.win.RequestClose()
		}

		tick++
		for _, k := range cfg.Keys {
			if k.Tick == tick {
				h.kbd.set(k.Code, k.Down)
			}
		}
		if cfg.Ticks > 0 && tick > cfg.Ticks {
			h.win.RequestClose()
		}

		h.beginFrame(false)
		if err := step(); err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
		if h.win.ShouldClose() {
			if closeTick == 0 {
				closeTick = tick
			} else if tick > closeTick {
				return errors.New("app ignored close request")
			}
		}
	}
}
