//go:build cgo || windows || darwin

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowKeys tracks the window's own controls: Escape closes the window and Space
// pauses the tick callback.
type windowKeys struct {
	paused bool
}

// poll reports whether the window should close.
func (k *windowKeys) poll() (quit bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		k.paused = !k.paused
	}
	return false
}
