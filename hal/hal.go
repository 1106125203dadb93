package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrClosed is returned by a frame step once the app reached its terminal state.
	// Runners treat it as a clean shutdown.
	ErrClosed = errors.New("closed")

	ErrNoFramebuffer = errors.New("no framebuffer")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyA
	KeyD
	KeyE
	KeyQ
	KeyS
	KeyW
	KeySpace

	keyCount
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyA:         "a",
	KeyD:         "d",
	KeyE:         "e",
	KeyQ:         "q",
	KeyS:         "s",
	KeyW:         "w",
	KeySpace:     "space",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events and the held state of each key.
type Keyboard interface {
	Events() <-chan KeyEvent
	Down(code KeyCode) bool
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Window reports close requests from the platform or the bound exit key.
type Window interface {
	ShouldClose() bool
	RequestClose()
	SetExitKey(code KeyCode)
}

// Clock provides per-frame timing.
type Clock interface {
	// FrameDelta returns the seconds elapsed since the previous frame.
	FrameDelta() float32
	// Now returns the seconds elapsed since the clock started.
	Now() float64
}

// Audio plays short tones (optional).
type Audio interface {
	Blip(freqHz float64, d time.Duration) error
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Window() Window
	Clock() Clock
	Audio() Audio
}

// WindowConfig describes the window a runner creates.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
	Scale  int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = 512
	}
	if c.TPS <= 0 {
		c.TPS = 120
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return c
}

// StepFunc advances the app by one frame.
type StepFunc func() error

// AppFactory builds the app against a HAL and returns its frame step.
type AppFactory func(h HAL) (StepFunc, error)
