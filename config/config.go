// Package config provides configuration loading and access for the renderer.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Wave      WaveConfig      `yaml:"wave"`
	Opacity   OpacityConfig   `yaml:"opacity"`
	Camera    CameraConfig    `yaml:"camera"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds dot-grid geometry parameters.
// Diameter is a fraction of min(viewportW, viewportH), clamped; the
// spacings are the diameter scaled by fixed ratios.
type GridConfig struct {
	DiameterFraction float64 `yaml:"diameter_fraction"` // Fraction of min viewport dimension
	MinDiameter      float64 `yaml:"min_diameter"`      // Clamp floor in pixels
	MaxDiameter      float64 `yaml:"max_diameter"`      // Clamp ceiling in pixels
	XSpacingRatio    float64 `yaml:"x_spacing_ratio"`   // xSpacing = diameter * this
	YSpacingRatio    float64 `yaml:"y_spacing_ratio"`   // ySpacing = diameter * this
	SafetyPadding    float64 `yaml:"safety_padding"`    // Extra coverage margin in pixels
}

// ScrollConfig holds horizontal scroll parameters.
type ScrollConfig struct {
	Speed float64 `yaml:"speed"` // Pixels per second along the field axis
}

// WaveConfig holds the wave and pulse modulation parameters.
// Amplitudes are fractions of the dot diameter; lengths are in cell
// columns so the pattern scale tracks the grid, not the screen.
type WaveConfig struct {
	Amplitude          float64 `yaml:"amplitude"`
	SecondaryAmplitude float64 `yaml:"secondary_amplitude"`
	RippleAmplitude    float64 `yaml:"ripple_amplitude"`
	Length             float64 `yaml:"length"` // Primary wavelength in cell columns
	Speed              float64 `yaml:"speed"`
	SecondaryFrequency float64 `yaml:"secondary_frequency"`
	RippleFreqX        float64 `yaml:"ripple_freq_x"`
	RippleFreqZ        float64 `yaml:"ripple_freq_z"`
	RippleSpeed        float64 `yaml:"ripple_speed"`
	PulseSpeed         float64 `yaml:"pulse_speed"`
	PulseSpatialX      float64 `yaml:"pulse_spatial_x"`
	PulseSpatialZ      float64 `yaml:"pulse_spatial_z"`
	PulseSharpen       float64 `yaml:"pulse_sharpen"` // Exponent < 1 widens the bright phase
}

// OpacityConfig holds the base brightness policy parameters.
type OpacityConfig struct {
	Min          float64 `yaml:"min"`           // Dimmest allowed base opacity
	FalloffPower float64 `yaml:"falloff_power"` // > 1 biases cells toward the dim end
	Seed         uint32  `yaml:"seed"`          // 0 = random per session
}

// CameraConfig holds view parameters for the field group.
// RotationX/Y, TranslationZ and BlurIntensity are accepted for forward
// compatibility but are not consumed by the visible algorithm.
type CameraConfig struct {
	Distance      float64 `yaml:"distance"`      // Depth used for height -> scale projection
	RotationX     float64 `yaml:"rotation_x"`    // Degrees (unused)
	RotationY     float64 `yaml:"rotation_y"`    // Degrees (unused)
	RotationZ     float64 `yaml:"rotation_z"`    // Degrees; the fixed field angle
	TranslationX  float64 `yaml:"translation_x"`
	TranslationY  float64 `yaml:"translation_y"`
	TranslationZ  float64 `yaml:"translation_z"` // Unused
	BlurIntensity float64 `yaml:"blur_intensity"` // Unused
}

// SpriteConfig holds the circle sprite asset settings.
type SpriteConfig struct {
	Path string `yaml:"path"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	RotationRad float64 // Camera.RotationZ in radians
	CosRotation float64
	SinRotation float64
	ScreenW32   float32
	ScreenH32   float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.RotationRad = c.Camera.RotationZ * math.Pi / 180
	c.Derived.CosRotation = math.Cos(c.Derived.RotationRad)
	c.Derived.SinRotation = math.Sin(c.Derived.RotationRad)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
