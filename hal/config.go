package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int
}

func (c *WindowConfig) normalize() {
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = DefaultWidth, DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64

	// Progress shows a progress bar on stderr when Ticks is set.
	Progress bool
	// Preview prints the final surface to stdout as text, PreviewCols wide.
	Preview     bool
	PreviewCols int
}

func (c *HeadlessConfig) normalize() {
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = DefaultWidth, DefaultHeight
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.PreviewCols <= 0 {
		c.PreviewCols = 80
	}
}
