//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ WindowConfig, _ AppFactory) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
