package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	Printf(format string, args ...any)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrFrameSize      = errors.New("frame size does not match surface")
)

// PixelFormat defines the surface pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatBGRA8 is 32bpp, bytes ordered blue, green, red, alpha.
	PixelFormatBGRA8 PixelFormat = iota + 1
)

func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatBGRA8:
		return 4
	default:
		return 0
	}
}

// Surface is a fixed-size pixel surface owned by the host.
//
// WritePixels copies a complete frame into the surface; the caller keeps ownership of
// p. Invalidate requests that the host redraw the surface.
type Surface interface {
	Width() int
	Height() int
	Format() PixelFormat
	WritePixels(p []byte) error
	Invalidate()
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Surface() Surface
}

// NewApp builds the per-tick callback for a host. The callback is invoked once per
// refresh, takes no arguments and must not block.
type NewApp func(h HAL) (step func() error, err error)
