//go:build !tinygo && !cgo

package hal

// newHostAudio has no backend without cgo.
func newHostAudio() Audio { return nil }
