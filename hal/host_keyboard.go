//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	keyState
}

func newHostKeyboard() *hostKeyboard {
	k := &hostKeyboard{}
	k.init()
	return k
}

var ebitenKeys = map[KeyCode]ebiten.Key{
	KeyUp:        ebiten.KeyArrowUp,
	KeyDown:      ebiten.KeyArrowDown,
	KeyLeft:      ebiten.KeyArrowLeft,
	KeyRight:     ebiten.KeyArrowRight,
	KeyEnter:     ebiten.KeyEnter,
	KeyEscape:    ebiten.KeyEscape,
	KeyBackspace: ebiten.KeyBackspace,
	KeyTab:       ebiten.KeyTab,
	KeyDelete:    ebiten.KeyDelete,
	KeyHome:      ebiten.KeyHome,
	KeyEnd:       ebiten.KeyEnd,
	KeyF1:        ebiten.KeyF1,
	KeyF2:        ebiten.KeyF2,
	KeyF3:        ebiten.KeyF3,
	KeyF4:        ebiten.KeyF4,
	KeyA:         ebiten.KeyA,
	KeyD:         ebiten.KeyD,
	KeyE:         ebiten.KeyE,
	KeyQ:         ebiten.KeyQ,
	KeyS:         ebiten.KeyS,
	KeyW:         ebiten.KeyW,
	KeySpace:     ebiten.KeySpace,
}

// poll must run on the ebiten update goroutine.
func (k *hostKeyboard) poll() {
	for code, key := range ebitenKeys {
		switch {
		case inpututil.IsKeyJustPressed(key):
			k.set(code, true)
		case inpututil.IsKeyJustReleased(key):
			k.set(code, false)
		default:
			// Catch presses that started before the window had focus.
			if ebiten.IsKeyPressed(key) != k.Down(code) {
				k.set(code, ebiten.IsKeyPressed(key))
			}
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		k.emitRune(r)
	}
}
