//go:build cgo || windows || darwin

package hal

import (
	"os"

	"axion/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the host surface and calls the app's step
// callback once per tick. It blocks until the window closes or step fails.
func RunWindow(cfg WindowConfig, newApp NewApp) error {
	cfg.normalize()
	h := newHost(cfg.Width, cfg.Height, os.Stdout)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	h.logger.Printf("window: %dx%d scale=%d tps=%d", h.s.width, h.s.height, cfg.Scale, cfg.TPS)

	g := &hostGame{s: h.s, step: step}
	title := cfg.Title
	if title == "" {
		title = "Axion"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.s.width*cfg.Scale, h.s.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	s       *hostSurface
	img     *ebiten.Image
	scratch []byte
	rgba    []byte
	drawn   uint64
	keys    windowKeys
	step    func() error
}

func (g *hostGame) Update() error {
	if g.keys.poll() {
		return ebiten.Termination
	}
	if g.step == nil || g.keys.paused {
		return nil
	}
	return g.step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	s := g.s
	if g.img == nil {
		g.img = ebiten.NewImage(s.width, s.height)
		g.scratch = make([]byte, len(s.buf))
		g.rgba = make([]byte, len(s.buf))
	}

	// Only convert when the surface has been invalidated since the last upload.
	if s.generation() != g.drawn {
		g.drawn = s.snapshot(g.scratch)
		bgraToRGBA(g.rgba, g.scratch)
		g.img.WritePixels(g.rgba)
	}
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.width, g.s.height
}
