// Package hud draws a small diagnostics overlay into an axion back buffer.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"axion/axion"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var colorText = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}

// Overlay renders one text line per frame plus one per mesh at the top-left corner.
type Overlay struct {
	Font  tinyfont.Fonter
	Color color.RGBA
	X, Y  int16
}

func New() *Overlay {
	return &Overlay{
		Font:  &tinyfont.TomThumb,
		Color: colorText,
		X:     2,
		Y:     1,
	}
}

// Lines returns the overlay text for a frame.
func Lines(info axion.FrameInfo) []string {
	lines := make([]string, 0, 1+len(info.Meshes))
	lines = append(lines, fmt.Sprintf("f=%d pts=%d/%d", info.Frame, info.Stats.Drawn, info.Stats.Vertices))
	for _, m := range info.Meshes {
		if m == nil {
			continue
		}
		r := m.Rotation
		lines = append(lines, fmt.Sprintf("%s %d rot=%.2f,%.2f,%.2f", m.Name, m.VertexCount(), r.X, r.Y, r.Z))
	}
	return lines
}

// Draw writes the overlay for info into dev. It has the signature of
// axion.Driver.Overlay.
func (o *Overlay) Draw(dev *axion.Device, info axion.FrameInfo) {
	if o == nil || dev == nil || o.Font == nil {
		return
	}
	d := &deviceDisplay{dev: dev}
	adv := int16(o.Font.GetYAdvance())
	y := o.Y + adv
	for _, s := range Lines(info) {
		tinyfont.WriteLine(d, o.Font, o.X, y, s, o.Color)
		y += adv
	}
}

// deviceDisplay adapts a Device to drivers.Displayer. Pixels outside the back buffer
// are dropped.
type deviceDisplay struct {
	dev *axion.Device
}

var _ drivers.Displayer = (*deviceDisplay)(nil)

// Size reports the buffer extent, saturated at math.MaxInt16.
func (d *deviceDisplay) Size() (x, y int16) {
	return clampInt16(d.dev.Width()), clampInt16(d.dev.Height())
}

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

func (d *deviceDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.dev.Width() || iy >= d.dev.Height() {
		return
	}
	d.dev.PutPixel(ix, iy, axion.Color4{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	})
}

func (d *deviceDisplay) Display() error { return nil }
