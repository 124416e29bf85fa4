// Package config loads the engine configuration from YAML. Everything here
// is static input: the render core treats the loaded values as immutable.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration values.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Level    LevelConfig    `yaml:"level"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	WindowScale  int    `yaml:"window_scale"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfViewDeg float64 `yaml:"field_of_view_degrees"`
	FacingDeg      float64 `yaml:"facing_degrees"`
}

type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	RotationSpeed   float64 `yaml:"rotation_speed"`
	CollisionRadius float64 `yaml:"collision_radius"`
}

type GraphicsConfig struct {
	// SideShade darkens walls hit on a vertical grid line relative to
	// horizontal ones. The value is a multiplier in (0, 1]; the stock
	// assets are tuned for 0.5.
	SideShade    float64 `yaml:"side_shade"`
	FloorColor   [3]int  `yaml:"floor_color"`
	CeilingColor [3]int  `yaml:"ceiling_color"`
	SkyColor     [3]int  `yaml:"sky_color"`
	// DepthShadeDist is the distance, in tiles, at which floor shading
	// bottoms out. Zero disables distance shading of the floor fill.
	DepthShadeDist float64       `yaml:"depth_shade_distance"`
	HideCeiling    bool          `yaml:"hide_ceiling"`
	Minimap        MinimapConfig `yaml:"minimap"`
}

type MinimapConfig struct {
	Enabled  bool `yaml:"enabled"`
	CellSize int  `yaml:"cell_size"`
	MarginPx int  `yaml:"margin_px"`
}

// AssetsConfig maps texture identifiers to farbfeld resource names. The
// loader resolves names against Dir (native) or a base URL (browser).
type AssetsConfig struct {
	Dir          string                 `yaml:"dir"`
	WallTextures map[int]string         `yaml:"wall_textures"`
	Sprites      map[string]SpriteAsset `yaml:"sprites"`
}

type SpriteAsset struct {
	Frames []string `yaml:"frames"`
}

type LevelConfig struct {
	MapFile string `yaml:"map_file"`
	// SpriteMarkers maps map-file letters to sprite names from the asset
	// manifest.
	SpriteMarkers map[string]string `yaml:"sprite_markers"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on error. Intended for use
// from main, where a bad config is fatal anyway.
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 640
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 400
	}
	if c.Display.WindowScale == 0 {
		c.Display.WindowScale = 1
	}
	if c.Camera.FieldOfViewDeg == 0 {
		c.Camera.FieldOfViewDeg = 66
	}
	if c.Graphics.SideShade == 0 {
		c.Graphics.SideShade = 0.5
	}
	if c.Movement.MoveSpeed == 0 {
		c.Movement.MoveSpeed = 3.5
	}
	if c.Movement.RotationSpeed == 0 {
		c.Movement.RotationSpeed = 2.5
	}
	if c.Movement.CollisionRadius == 0 {
		c.Movement.CollisionRadius = 0.2
	}
}

// Validate rejects configurations the renderer cannot run with.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth < 1 || c.Display.ScreenHeight < 1 {
		return fmt.Errorf("config: screen size %dx%d is invalid",
			c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Camera.FieldOfViewDeg <= 0 || c.Camera.FieldOfViewDeg >= 180 {
		return fmt.Errorf("config: field of view %.1f degrees out of range (0, 180)",
			c.Camera.FieldOfViewDeg)
	}
	if c.Graphics.SideShade <= 0 || c.Graphics.SideShade > 1 {
		return fmt.Errorf("config: side_shade %.2f out of range (0, 1]", c.Graphics.SideShade)
	}
	for marker, sprite := range c.Level.SpriteMarkers {
		if _, ok := c.Assets.Sprites[sprite]; !ok {
			return fmt.Errorf("config: map marker %q references unknown sprite %q", marker, sprite)
		}
	}
	return nil
}

// FieldOfView returns the configured FOV in radians.
func (c *Config) FieldOfView() float64 {
	return c.Camera.FieldOfViewDeg * math.Pi / 180
}

// FacingAngle returns the initial camera facing in radians.
func (c *Config) FacingAngle() float64 {
	return c.Camera.FacingDeg * math.Pi / 180
}

// GetScreenWidth returns the render width in pixels.
func (c *Config) GetScreenWidth() int { return c.Display.ScreenWidth }

// GetScreenHeight returns the render height in pixels.
func (c *Config) GetScreenHeight() int { return c.Display.ScreenHeight }
