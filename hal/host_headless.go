package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// RunHeadless runs the app without opening a window.
//
// The step callback is invoked cfg.Hz times per second until ctx is done or, when
// cfg.Ticks is non-zero, after that many ticks.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewApp) error {
	return runHeadless(ctx, cfg, newApp, os.Stdout, os.Stderr)
}

func runHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewApp, out, errOut io.Writer) error {
	cfg.normalize()

	h := newHost(cfg.Width, cfg.Height, out)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var bar *progressbar.ProgressBar
	if cfg.Progress && cfg.Ticks > 0 {
		bar = progressbar.NewOptions64(int64(cfg.Ticks),
			progressbar.OptionSetWriter(errOut),
			progressbar.OptionSetDescription("render"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return fmt.Errorf("tick %d: %w", tick+1, err)
				}
			}
			tick++
			if bar != nil {
				_ = bar.Add(1)
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				if bar != nil {
					_ = bar.Finish()
				}
				h.logger.Printf("headless: %d ticks, %d presents", tick, h.s.generation())
				if cfg.Preview {
					pix := make([]byte, len(h.s.buf))
					h.s.snapshot(pix)
					return WritePreview(out, pix, h.s.width, h.s.height, cfg.PreviewCols)
				}
				return nil
			}
		}
	}
}
