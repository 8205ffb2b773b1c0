package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"axion/axion"
	"axion/hal"
	"axion/hud"
)

// Scene is the assembled stock scene.
type Scene struct {
	Device *axion.Device
	Camera *axion.Camera
	Cube   *axion.Mesh
	Driver *axion.Driver
}

// NewScene binds a Device to the host surface and builds the rotating cube.
func NewScene(h hal.HAL, cfg Config) (*Scene, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if h == nil || h.Surface() == nil {
		return nil, fmt.Errorf("new scene: %w", axion.ErrNilSurface)
	}
	if f := h.Surface().Format(); f != hal.PixelFormatBGRA8 {
		return nil, fmt.Errorf("new scene: unsupported pixel format %d", f)
	}

	dev, err := axion.NewDevice(h.Surface())
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	cam := axion.NewCamera(cfg.Camera.Position.vector(), cfg.Camera.Target.vector())
	cube := axion.NewCube("Cube")

	dr := axion.NewDriver(dev, cam, cube)
	bg := cfg.Background
	dr.Background = axion.RGBA8{R: bg.R, G: bg.G, B: bg.B, A: bg.A}
	dr.Spin = cfg.Spin.vector()
	if cfg.HUD {
		dr.Overlay = hud.New().Draw
	}

	return &Scene{Device: dev, Camera: cam, Cube: cube, Driver: dr}, nil
}

// New builds the stock scene on h and returns its per-tick callback.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := NewScene(h, cfg)
	if err != nil {
		return nil, err
	}
	log := h.Logger()
	if log != nil {
		p, t := s.Camera.Position, s.Camera.Target
		log.Printf("scene: %dx%d mesh=%s vertices=%d camera=(%g,%g,%g)->(%g,%g,%g) hud=%t",
			s.Device.Width(), s.Device.Height(), s.Cube.Name, s.Cube.VertexCount(),
			p.X, p.Y, p.Z, t.X, t.Y, t.Z, cfg.HUD)
	}
	return guard(log, s.Driver.Step), nil
}

// guard turns a panic inside step into an error so the host stops cleanly. Panics
// here are contract violations, so the stack is logged.
func guard(log hal.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if log != nil {
				log.WriteLineString(fmt.Sprintf("axion panic: %v", r))
				for _, line := range strings.Split(string(debug.Stack()), "\n") {
					if line == "" {
						continue
					}
					log.WriteLineString(line)
				}
			}
			if e, ok := r.(error); ok {
				err = fmt.Errorf("frame aborted: %w", e)
				return
			}
			err = fmt.Errorf("frame aborted: %v", r)
		}()
		return step()
	}
}
