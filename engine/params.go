package engine

import (
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/field"
)

// Params holds the layout and animation constants for one engine
// instance. Immutable after construction; everything that varies per
// frame lives in the engine state instead.
type Params struct {
	// Grid geometry
	DiameterFraction float64
	MinDiameter      float64
	MaxDiameter      float64
	XSpacingRatio    float64
	YSpacingRatio    float64
	SafetyPadding    float64

	// Fixed field rotation
	Rotation float64 // radians
	CosR     float64
	SinR     float64

	// Scroll
	ScrollSpeed float64 // pixels per second along the rotated x axis

	// Depth projection
	CameraDistance float64

	Wave WaveParams
}

// WaveParams holds the wave and pulse modulation constants.
// Amplitudes are fractions of the dot diameter, lengths are in cell
// columns; both are converted to pixels at rebuild time.
type WaveParams struct {
	Amplitude          float64
	SecondaryAmplitude float64
	RippleAmplitude    float64
	Length             float64
	Speed              float64
	SecondaryFrequency float64
	RippleFreqX        float64
	RippleFreqZ        float64
	RippleSpeed        float64
	PulseSpeed         float64
	PulseSpatialX      float64
	PulseSpatialZ      float64
	PulseSharpen       float64
}

// ParamsFromConfig builds engine params from the loaded configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		DiameterFraction: cfg.Grid.DiameterFraction,
		MinDiameter:      cfg.Grid.MinDiameter,
		MaxDiameter:      cfg.Grid.MaxDiameter,
		XSpacingRatio:    cfg.Grid.XSpacingRatio,
		YSpacingRatio:    cfg.Grid.YSpacingRatio,
		SafetyPadding:    cfg.Grid.SafetyPadding,
		Rotation:         cfg.Derived.RotationRad,
		CosR:             cfg.Derived.CosRotation,
		SinR:             cfg.Derived.SinRotation,
		ScrollSpeed:      cfg.Scroll.Speed,
		CameraDistance:   cfg.Camera.Distance,
		Wave: WaveParams{
			Amplitude:          cfg.Wave.Amplitude,
			SecondaryAmplitude: cfg.Wave.SecondaryAmplitude,
			RippleAmplitude:    cfg.Wave.RippleAmplitude,
			Length:             cfg.Wave.Length,
			Speed:              cfg.Wave.Speed,
			SecondaryFrequency: cfg.Wave.SecondaryFrequency,
			RippleFreqX:        cfg.Wave.RippleFreqX,
			RippleFreqZ:        cfg.Wave.RippleFreqZ,
			RippleSpeed:        cfg.Wave.RippleSpeed,
			PulseSpeed:         cfg.Wave.PulseSpeed,
			PulseSpatialX:      cfg.Wave.PulseSpatialX,
			PulseSpatialZ:      cfg.Wave.PulseSpatialZ,
			PulseSharpen:       cfg.Wave.PulseSharpen,
		},
	}
}

// PolicyFromConfig builds the opacity policy from the loaded
// configuration with the given session seed.
func PolicyFromConfig(cfg *config.Config, seed uint32) field.Policy {
	return field.NewPolicy(cfg.Opacity.Min, cfg.Opacity.FalloffPower, seed)
}
