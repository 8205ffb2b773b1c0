package hal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// previewRamp maps luminance to glyphs, darkest first.
const previewRamp = " .:-=+*#%@"

// WritePreview prints a BGRA8 frame as cols-wide text. Each character covers a block
// of pixels and shows its brightest pixel, colored when the terminal supports it.
func WritePreview(w io.Writer, pix []byte, width, height, cols int) error {
	return writePreview(w, pix, width, height, cols)
}

func writePreview(w io.Writer, pix []byte, width, height, cols int, opts ...termenv.OutputOption) error {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrFrameSize, len(pix), width, height)
	}
	if cols <= 0 || cols > width {
		cols = width
	}
	cellW := (width + cols - 1) / cols
	// Terminal cells are roughly twice as tall as they are wide.
	cellH := cellW * 2

	out := termenv.NewOutput(w, opts...)
	bw := bufio.NewWriter(w)
	var line strings.Builder
	for y0 := 0; y0 < height; y0 += cellH {
		line.Reset()
		for x0 := 0; x0 < width; x0 += cellW {
			r, g, b, lum := brightest(pix, width, height, x0, y0, cellW, cellH)
			ch := string(previewRamp[int(lum)*(len(previewRamp)-1)/255])
			if lum == 0 {
				line.WriteString(ch)
				continue
			}
			c := out.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
			line.WriteString(out.String(ch).Foreground(c).String())
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func brightest(pix []byte, width, height, x0, y0, cw, ch int) (r, g, b, lum uint8) {
	var best uint32
	for y := y0; y < y0+ch && y < height; y++ {
		for x := x0; x < x0+cw && x < width; x++ {
			off := (x + y*width) * 4
			pb, pg, pr := pix[off], pix[off+1], pix[off+2]
			// Rec. 601 weights, scaled by 1000.
			l := (299*uint32(pr) + 587*uint32(pg) + 114*uint32(pb)) / 1000
			if l > best {
				best = l
				r, g, b = pr, pg, pb
			}
		}
	}
	return r, g, b, uint8(best)
}
