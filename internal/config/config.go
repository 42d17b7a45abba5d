package config

import (
	"errors"
	"fmt"
)

// Screen dimensions (portrait, phone-shaped)
const (
	ScreenWidth  = 390
	ScreenHeight = 844
	TPS          = 60
)

// Star field
const (
	StarCount      = 50
	StarMinSize    = 2.0
	StarMaxSize    = 4.0
	StarMinOpacity = 0.3
	StarMaxOpacity = 1.0
	StarMinPeriod  = 2.0
	StarMaxPeriod  = 4.0
	StarMaxY       = 0.5 // stars stay in the top half of the sky
)

// Flames
const (
	FlameLifetime     = 2.5
	FlameGrowDuration = 0.3
	FlamePeakSize     = 150.0
	FlameDriftX       = 50.0  // lateral drift is drawn from [-FlameDriftX, FlameDriftX]
	FlameRise         = 150.0 // upward drift, applied as a negative y offset
	FlameCornerStart  = 10.0
	FlameCornerEnd    = 50.0
)

// Layout
const (
	SceneTopPadding = 400.0
	FlameSink       = 20.0 // flames sit this far below the column anchor
	LogWidth        = 300.0
	LogHeight       = 40.0
	LogCorner       = 5.0
	LogAngle        = 20.0 // degrees
	LogOffsetY      = 50.0
)

// Ember glow
const (
	GlowMinIntensity = 0.45
	GlowMaxIntensity = 0.85
	GlowRadius       = 140.0
	GlowSpeed        = 1.7 // noise samples per second
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables for one scene.
type Config struct {
	Width  int
	Height int
	TPS    int
	Seed   int64

	StarCount int

	FlameLifetime     float64
	FlameGrowDuration float64
	FlamePeakSize     float64
	FlameDriftX       float64
	FlameRise         float64

	// FadeOut eases flame opacity from 1 to 0 during the drift stage.
	// When false opacity stays at 1 for the whole lifetime.
	FadeOut bool

	// Debug draws a text overlay with the live counts.
	Debug bool
}

// DefaultConfig returns the default scene configuration.
func DefaultConfig() Config {
	return Config{
		Width:             ScreenWidth,
		Height:            ScreenHeight,
		TPS:               TPS,
		StarCount:         StarCount,
		FlameLifetime:     FlameLifetime,
		FlameGrowDuration: FlameGrowDuration,
		FlamePeakSize:     FlamePeakSize,
		FlameDriftX:       FlameDriftX,
		FlameRise:         FlameRise,
	}
}

// SpawnInterval is the time between two flame spawns.
func (c Config) SpawnInterval() float64 {
	return c.FlameLifetime / 4
}

// FlameExpiry is the age at which a flame leaves the live set.
func (c Config) FlameExpiry() float64 {
	return c.FlameLifetime + c.FlameGrowDuration
}

// Validate reports the first field that would break the animation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.StarCount < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalidConfig, c.StarCount)
	case c.FlameLifetime <= 0:
		return fmt.Errorf("%w: flame lifetime %g", ErrInvalidConfig, c.FlameLifetime)
	case c.FlameGrowDuration < 0:
		return fmt.Errorf("%w: flame grow duration %g", ErrInvalidConfig, c.FlameGrowDuration)
	case c.FlamePeakSize <= 0:
		return fmt.Errorf("%w: flame peak size %g", ErrInvalidConfig, c.FlamePeakSize)
	case c.FlameDriftX < 0:
		return fmt.Errorf("%w: flame drift %g", ErrInvalidConfig, c.FlameDriftX)
	}
	return nil
}
