package campfire

import (
	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/campfire-go/internal/config"
)

// Perlin parameters for the ember flicker
const (
	glowAlpha   = 2.0
	glowBeta    = 2.0
	glowOctaves = 3
)

// Glow is the light pool the embers cast under the flames.
type Glow struct {
	noise     *perlin.Perlin
	Intensity float64 // in [GlowMinIntensity, GlowMaxIntensity]
}

// NewGlow creates a glow whose flicker curve is fixed by seed
func NewGlow(seed int64) *Glow {
	return &Glow{
		noise:     perlin.NewPerlin(glowAlpha, glowBeta, glowOctaves, seed),
		Intensity: (config.GlowMinIntensity + config.GlowMaxIntensity) / 2,
	}
}

// Advance samples the flicker curve at time now.
func (g *Glow) Advance(now float64) {
	n := g.noise.Noise1D(now * config.GlowSpeed)
	// Noise is roughly in [-1,1]; map to [0,1] and keep the tails in band.
	p := clamp((n+1)/2, 0, 1)
	g.Intensity = lerp(config.GlowMinIntensity, config.GlowMaxIntensity, p)
}
