//go:build !tinygo && !cgo

package hal

// hostKeyboard has no device without cgo; keys only change through headless scripts.
type hostKeyboard struct {
	keyState
}

func newHostKeyboard() *hostKeyboard {
	k := &hostKeyboard{}
	k.init()
	return k
}

func (k *hostKeyboard) poll() {}
