//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	win    *hostWindow
	clock  frameClock
	aud    Audio
}

// frameClock is a Clock that the runner advances once per frame.
type frameClock interface {
	Clock
	tick()
}

func newHostHAL(cfg WindowConfig, clock frameClock, aud Audio) *hostHAL {
	kbd := newHostKeyboard()
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    kbd,
		win:    &hostWindow{kbd: kbd},
		clock:  clock,
		aud:    aud,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Window() Window   { return h.win }
func (h *hostHAL) Clock() Clock     { return h.clock }
func (h *hostHAL) Audio() Audio     { return h.aud }

// beginFrame polls the platform and advances the clock.
func (h *hostHAL) beginFrame(pollDevices bool) {
	if pollDevices {
		h.kbd.poll()
	}
	h.win.poll()
	h.clock.tick()
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostWindow struct {
	mu        sync.Mutex
	kbd       *hostKeyboard
	exitKey   KeyCode
	requested bool
}

func (w *hostWindow) ShouldClose() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.requested
}

func (w *hostWindow) RequestClose() {
	w.mu.Lock()
	w.requested = true
	w.mu.Unlock()
}

func (w *hostWindow) SetExitKey(code KeyCode) {
	w.mu.Lock()
	w.exitKey = code
	w.mu.Unlock()
}

func (w *hostWindow) poll() {
	w.mu.Lock()
	key := w.exitKey
	w.mu.Unlock()
	if key != KeyUnknown && w.kbd.Down(key) {
		w.RequestClose()
	}
}
