package axion

// Color4 is a normalized RGBA color, each channel in [0,1].
type Color4 struct {
	R, G, B, A float32
}

// Yellow is opaque yellow.
var Yellow = Color4{R: 1, G: 1, B: 0, A: 1}

// Quantize converts a normalized channel to 8 bits. Values are clamped to [0,1] and
// rounded half up.
func Quantize(f float32) byte {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 0xFF
	}
	return byte(f*255 + 0.5)
}

// BGRA returns the quantized channels in back-buffer byte order.
func (c Color4) BGRA() [4]byte {
	return [4]byte{Quantize(c.B), Quantize(c.G), Quantize(c.R), Quantize(c.A)}
}
