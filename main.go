package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"axion/app"
	"axion/hal"
	"axion/internal/buildinfo"
)

func main() {
	var (
		cfg        hal.HeadlessConfig
		configPath string
		scale      int
		hud        bool
		version    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML scene config.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Progress, "progress", false, "Show a progress bar in headless mode (requires -ticks).")
	flag.BoolVar(&cfg.Preview, "preview", false, "Print the last headless frame as text.")
	flag.IntVar(&cfg.PreviewCols, "preview-cols", 80, "Preview width in characters.")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&hud, "hud", false, "Draw the diagnostics overlay.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	sc, err := app.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if hud {
		sc.HUD = true
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, sc)
	}

	if cfg.Enabled {
		cfg.Width, cfg.Height = sc.Width, sc.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	wc := hal.WindowConfig{
		Title:  "Axion",
		Width:  sc.Width,
		Height: sc.Height,
		Scale:  scale,
		TPS:    cfg.Hz,
	}
	if err := hal.RunWindow(wc, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
