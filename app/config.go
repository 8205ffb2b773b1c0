package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"axion/axion"
	"axion/vecmath"
)

// Vec3 is a YAML-friendly vecmath.Vector3.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) vector() vecmath.Vector3 { return vecmath.V3(v.X, v.Y, v.Z) }

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Config describes the window, the scene and the scene driver.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Background *Color `yaml:"background,omitempty"`

	Camera CameraConfig `yaml:"camera"`

	// Spin is the rotation added to every mesh each frame, in radians.
	Spin *Vec3 `yaml:"spin,omitempty"`

	HUD bool `yaml:"hud"`
}

type CameraConfig struct {
	Position *Vec3 `yaml:"position,omitempty"`
	Target   *Vec3 `yaml:"target,omitempty"`
}

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) normalize() {
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.Background == nil {
		c.Background = &Color{A: 0xFF}
	}
	if c.Camera.Position == nil {
		c.Camera.Position = &Vec3{Z: 10}
	}
	if c.Camera.Target == nil {
		c.Camera.Target = &Vec3{}
	}
	if c.Spin == nil {
		s := axion.DefaultSpin
		c.Spin = &Vec3{X: s.X, Y: s.Y, Z: s.Z}
	}
}

// Validate reports whether the normalized config can build a scene.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if p, t := c.Camera.Position, c.Camera.Target; p != nil && t != nil && *p == *t {
		return fmt.Errorf("%w: camera position equals target", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns the stock scene settings.
func DefaultConfig() Config {
	var c Config
	c.normalize()
	return c
}

// LoadConfig reads a YAML config file. An empty path yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data and applies defaults.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
