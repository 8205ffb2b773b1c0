//go:build !cgo && !windows && !darwin

package hal

import "fmt"

func RunWindow(_ WindowConfig, _ NewApp) error {
	return fmt.Errorf("window mode on this platform requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
