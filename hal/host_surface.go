package hal

import (
	"fmt"
	"sync"
)

type hostSurface struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte

	// gen is bumped by Invalidate; readers compare it against the last
	// generation they drew.
	gen uint64
}

func newHostSurface(width, height int) *hostSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &hostSurface{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*PixelFormatBGRA8.BytesPerPixel()),
	}
}

func (s *hostSurface) Width() int          { return s.width }
func (s *hostSurface) Height() int         { return s.height }
func (s *hostSurface) Format() PixelFormat { return PixelFormatBGRA8 }

func (s *hostSurface) WritePixels(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(p) != len(s.buf) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(p), len(s.buf))
	}
	copy(s.buf, p)
	return nil
}

func (s *hostSurface) Invalidate() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// generation returns the number of Invalidate calls so far.
func (s *hostSurface) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// snapshot copies the surface into dst and returns the current generation.
func (s *hostSurface) snapshot(dst []byte) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.buf)
	return s.gen
}
