package axion

import (
	"fmt"

	"axion/vecmath"
)

// Fixed pipeline parameters.
const (
	FieldOfView float32 = 0.78
	ZNear       float32 = 0.01
	ZFar        float32 = 1.0
)

// DrawColor is the color of every rasterized vertex.
var DrawColor = Yellow

// Surface is the externally owned display surface a Device presents into.
//
// WritePixels copies a complete BGRA8 frame (Width*Height*4 bytes) into the surface's
// own storage; Invalidate requests a redraw.
type Surface interface {
	Width() int
	Height() int
	WritePixels(p []byte) error
	Invalidate()
}

// RenderStats describes the last Render call.
type RenderStats struct {
	Meshes   int
	Vertices int
	Drawn    int
	Clipped  int
}

// Device owns the back buffer and runs the projection pipeline.
type Device struct {
	surface Surface
	width   int
	height  int
	back    []byte

	stats RenderStats
}

// NewDevice binds a Device to s and allocates a back buffer of the surface's size.
//
// The back buffer content is undefined until the first Clear.
func NewDevice(s Surface) (*Device, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Device{
		surface: s,
		width:   w,
		height:  h,
		back:    make([]byte, w*h*4),
	}, nil
}

func (d *Device) Width() int         { return d.width }
func (d *Device) Height() int        { return d.height }
func (d *Device) Stats() RenderStats { return d.stats }

// Buffer returns a copy of the back buffer.
func (d *Device) Buffer() []byte {
	out := make([]byte, len(d.back))
	copy(out, d.back)
	return out
}

// Clear sets every pixel to the given color, stored as B, G, R, A.
func (d *Device) Clear(r, g, b, a byte) {
	for i := 0; i+3 < len(d.back); i += 4 {
		d.back[i] = b
		d.back[i+1] = g
		d.back[i+2] = r
		d.back[i+3] = a
	}
}

// Present copies the back buffer into the surface and requests a redraw.
func (d *Device) Present() error {
	if w, h := d.surface.Width(), d.surface.Height(); w != d.width || h != d.height {
		return fmt.Errorf("%w: surface %dx%d, buffer %dx%d", ErrSurfaceMismatch, w, h, d.width, d.height)
	}
	if err := d.surface.WritePixels(d.back); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	d.surface.Invalidate()
	return nil
}

// PutPixel writes c at (x, y). It panics with an *OutOfBoundsError when the
// coordinate lies outside the back buffer.
func (d *Device) PutPixel(x, y int, c Color4) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		panic(&OutOfBoundsError{X: x, Y: y, Width: d.width, Height: d.height})
	}
	px := c.BGRA()
	off := (x + y*d.width) * 4
	copy(d.back[off:off+4], px[:])
}

// Pixel returns the B, G, R, A bytes at (x, y).
func (d *Device) Pixel(x, y int) (b, g, r, a byte) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		panic(&OutOfBoundsError{X: x, Y: y, Width: d.width, Height: d.height})
	}
	off := (x + y*d.width) * 4
	return d.back[off], d.back[off+1], d.back[off+2], d.back[off+3]
}

// Project maps coord through transform and into pixel space. The result may lie
// outside the back buffer.
func (d *Device) Project(coord vecmath.Vector3, transform vecmath.Matrix) vecmath.Vector2 {
	p := vecmath.TransformCoordinate(coord, transform)
	w := float32(d.width)
	h := float32(d.height)
	return vecmath.Vector2{
		X: p.X*w + w/2,
		Y: p.Y*h + h/2,
	}
}

// DrawPoint plots p in DrawColor if it falls inside the back buffer and reports
// whether a pixel was written.
func (d *Device) DrawPoint(p vecmath.Vector2) bool {
	if !(p.X >= 0 && p.Y >= 0 && p.X < float32(d.width) && p.Y < float32(d.height)) {
		return false
	}
	d.PutPixel(int(p.X), int(p.Y), DrawColor)
	return true
}

// Projection returns the projection matrix for the back buffer's aspect ratio.
func (d *Device) Projection() vecmath.Matrix {
	aspect := float32(d.width) / float32(d.height)
	return vecmath.PerspectiveFovRH(FieldOfView, aspect, ZNear, ZFar)
}

// WorldMatrix returns the object-to-world transform of m: rotation, then translation.
func WorldMatrix(m *Mesh) vecmath.Matrix {
	rot := vecmath.RotationYawPitchRoll(m.Rotation.Y, m.Rotation.X, m.Rotation.Z)
	return rot.Mul(vecmath.Translation(m.Position))
}

// Render projects and plots every vertex of every mesh.
func (d *Device) Render(camera *Camera, meshes ...*Mesh) {
	d.stats = RenderStats{}
	if camera == nil {
		return
	}
	view := camera.View()
	proj := d.Projection()

	for _, m := range meshes {
		if m == nil {
			continue
		}
		d.stats.Meshes++
		transform := WorldMatrix(m).Mul(view).Mul(proj)
		for _, v := range m.Vertices {
			d.stats.Vertices++
			if d.DrawPoint(d.Project(v, transform)) {
				d.stats.Drawn++
			} else {
				d.stats.Clipped++
			}
		}
	}
}
