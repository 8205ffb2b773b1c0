package axion

import (
	"errors"

	"axion/vecmath"
)

// DefaultSpin is the per-frame rotation increment of the stock scene.
var DefaultSpin = vecmath.V3(0.01, 0.01, 0)

// RGBA8 is an 8-bit clear color.
type RGBA8 struct {
	R, G, B, A byte
}

// FrameInfo is passed to a Driver overlay after the scene has been rendered.
type FrameInfo struct {
	Frame  uint64
	Meshes []*Mesh
	Stats  RenderStats
}

// Driver advances a scene one frame at a time.
//
// Step has the shape of a host tick callback and can be handed to any runner that
// calls a func() error once per refresh.
type Driver struct {
	Device     *Device
	Camera     *Camera
	Meshes     []*Mesh
	Background RGBA8
	Spin       vecmath.Vector3

	// Overlay, if set, draws into the back buffer after Render and before Present.
	Overlay func(d *Device, info FrameInfo)

	frame uint64
}

var errNoDevice = errors.New("axion: driver has no device")

// NewDriver returns a driver with an opaque black background and DefaultSpin.
func NewDriver(dev *Device, cam *Camera, meshes ...*Mesh) *Driver {
	return &Driver{
		Device:     dev,
		Camera:     cam,
		Meshes:     meshes,
		Background: RGBA8{A: 0xFF},
		Spin:       DefaultSpin,
	}
}

// Frame returns the number of completed frames.
func (dr *Driver) Frame() uint64 { return dr.frame }

// Step clears, advances every mesh by Spin, renders, runs the overlay and presents.
func (dr *Driver) Step() error {
	d := dr.Device
	if d == nil {
		return errNoDevice
	}
	bg := dr.Background
	d.Clear(bg.R, bg.G, bg.B, bg.A)

	for _, m := range dr.Meshes {
		if m != nil {
			m.Rotate(dr.Spin)
		}
	}

	d.Render(dr.Camera, dr.Meshes...)

	if dr.Overlay != nil {
		dr.Overlay(d, FrameInfo{Frame: dr.frame + 1, Meshes: dr.Meshes, Stats: d.Stats()})
	}

	if err := d.Present(); err != nil {
		return err
	}
	dr.frame++
	return nil
}
