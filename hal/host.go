package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

type hostHAL struct {
	logger *hostLogger
	s      *hostSurface
}

// New returns a host HAL with a width x height BGRA8 surface. Non-positive sizes
// fall back to DefaultWidth x DefaultHeight.
func New(width, height int) HAL {
	return newHost(width, height, os.Stdout)
}

func newHost(width, height int, logw io.Writer) *hostHAL {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return &hostHAL{
		logger: &hostLogger{w: logw, now: time.Now},
		s:      newHostSurface(width, height),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Surface() Surface { return h.s }

type hostLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", l.now().Format("15:04:05.000"), s)
}

func (l *hostLogger) Printf(format string, args ...any) {
	l.WriteLineString(fmt.Sprintf(format, args...))
}
