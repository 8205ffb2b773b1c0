package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axion/axion"
	"axion/hal"
	"axion/vecmath"
)

type testSurface struct {
	w, h        int
	format      hal.PixelFormat
	pix         []byte
	invalidates int
}

func (s *testSurface) Width() int              { return s.w }
func (s *testSurface) Height() int             { return s.h }
func (s *testSurface) Format() hal.PixelFormat { return s.format }
func (s *testSurface) Invalidate()             { s.invalidates++ }
func (s *testSurface) WritePixels(p []byte) error {
	s.pix = append(s.pix[:0], p...)
	return nil
}

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

type testHAL struct {
	s   *testSurface
	log *testLogger
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Surface() hal.Surface { return h.s }

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		s:   &testSurface{w: w, h: h, format: hal.PixelFormatBGRA8},
		log: &testLogger{},
	}
}

func lit(pix []byte) int {
	n := 0
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 {
			n++
		}
	}
	return n
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, Color{A: 255}, *c.Background)
	assert.Equal(t, Vec3{Z: 10}, *c.Camera.Position)
	assert.Equal(t, Vec3{}, *c.Camera.Target)
	assert.Equal(t, Vec3{X: 0.01, Y: 0.01}, *c.Spin)
	assert.False(t, c.HUD)
	assert.NoError(t, c.Validate())
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
width: 320
height: 200
hud: true
background: {r: 10, g: 20, b: 30, a: 255}
camera:
  position: {x: 0, y: 2, z: 8}
spin: {x: 0, y: 0.05, z: 0}
`))
	require.NoError(t, err)
	assert.Equal(t, 320, c.Width)
	assert.Equal(t, 200, c.Height)
	assert.True(t, c.HUD)
	assert.Equal(t, Color{R: 10, G: 20, B: 30, A: 255}, *c.Background)
	assert.Equal(t, Vec3{Y: 2, Z: 8}, *c.Camera.Position)
	assert.Equal(t, Vec3{}, *c.Camera.Target)
	assert.Equal(t, Vec3{Y: 0.05}, *c.Spin)
}

func TestParseConfigZeroSpinIsKept(t *testing.T) {
	c, err := ParseConfig([]byte("spin: {x: 0, y: 0, z: 0}\n"))
	require.NoError(t, err)
	assert.Equal(t, Vec3{}, *c.Spin)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("width: -3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseConfig([]byte("camera: {position: {x: 0, y: 0, z: 0}}\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseConfig([]byte("width: [1, 2]\n"))
	assert.ErrorContains(t, err, "parse config")

	// Validate does not require normalized camera fields.
	assert.ErrorIs(t, (&Config{}).Validate(), ErrInvalidConfig)
	assert.NoError(t, (&Config{Width: 1, Height: 1}).Validate())
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	path := filepath.Join(t.TempDir(), "axion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 100\nheight: 50\n"), 0o644))
	c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Width)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRunsFrames(t *testing.T) {
	h := newTestHAL(640, 480)
	step, err := New(h, DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, h.log.lines)
	assert.True(t, strings.HasPrefix(h.log.lines[0], "scene: 640x480 mesh=Cube vertices=8"))

	for i := 0; i < 5; i++ {
		require.NoError(t, step())
	}
	assert.Equal(t, 5, h.s.invalidates)
	assert.Equal(t, 8, lit(h.s.pix))
}

func TestNewSceneHUD(t *testing.T) {
	h := newTestHAL(320, 240)
	cfg := DefaultConfig()
	cfg.HUD = true
	s, err := NewScene(h, cfg)
	require.NoError(t, err)
	require.NotNil(t, s.Driver.Overlay)
	require.NoError(t, s.Driver.Step())
	assert.Greater(t, lit(h.s.pix), 8)
}

func TestNewSceneRejectsFormat(t *testing.T) {
	h := newTestHAL(4, 4)
	h.s.format = 0
	_, err := NewScene(h, DefaultConfig())
	assert.ErrorContains(t, err, "unsupported pixel format")

	h = newTestHAL(0, 4)
	_, err = NewScene(h, DefaultConfig())
	assert.ErrorIs(t, err, axion.ErrInvalidSize)
}

func TestGuardRecoversContractPanic(t *testing.T) {
	log := &testLogger{}
	step := guard(log, func() error {
		dev, err := axion.NewDevice(newTestHAL(2, 2).s)
		require.NoError(t, err)
		dev.PutPixel(5, 5, axion.Yellow)
		return nil
	})

	err := step()
	var oob *axion.OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, 5, oob.X)
	require.NotEmpty(t, log.lines)
	assert.Contains(t, log.lines[0], "axion panic")
}

func TestGuardPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	assert.ErrorIs(t, guard(nil, func() error { return boom })(), boom)
	assert.NoError(t, guard(nil, func() error { return nil })())
	assert.ErrorContains(t, guard(nil, func() error { panic("odd") })(), "frame aborted: odd")
}

func TestVec3Vector(t *testing.T) {
	assert.Equal(t, vecmath.V3(1, 2, 3), Vec3{X: 1, Y: 2, Z: 3}.vector())
}
