package hal

// bgraToRGBA converts BGRA8 pixels to premultiplied RGBA8.
func bgraToRGBA(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		b, g, r, a := src[i], src[i+1], src[i+2], src[i+3]
		if a != 0xFF {
			r = premul(r, a)
			g = premul(g, a)
			b = premul(b, a)
		}
		dst[i+0] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
