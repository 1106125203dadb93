package hal

import "sync"

// keyState holds the held state of every KeyCode plus a bounded event queue.
type keyState struct {
	mu   sync.Mutex
	down [keyCount]bool
	ch   chan KeyEvent
}

func (k *keyState) init() {
	k.ch = make(chan KeyEvent, 64)
}

func (k *keyState) Events() <-chan KeyEvent { return k.ch }

func (k *keyState) Down(code KeyCode) bool {
	if code >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[code]
}

func (k *keyState) set(code KeyCode, down bool) {
	if code >= keyCount {
		return
	}
	k.mu.Lock()
	changed := k.down[code] != down
	k.down[code] = down
	k.mu.Unlock()
	if !changed {
		return
	}
	select {
	case k.ch <- KeyEvent{Code: code, Press: down}:
	default:
	}
}

func (k *keyState) emitRune(r rune) {
	select {
	case k.ch <- KeyEvent{Press: true, Rune: r}:
	default:
	}
}
