package campfire

import (
	"math/rand"

	"github.com/olivierh59500/campfire-go/internal/config"
)

// StarID identifies a star for the lifetime of the scene.
type StarID uint64

// Star is one point light in the sky. X and Y are normalized to the screen.
type Star struct {
	ID      StarID
	X, Y    float64
	Size    float64
	Opacity float64
	Period  float64 // seconds between brightness changes, also the fade duration

	from, to  float64 // opacity transition endpoints
	startedAt float64 // start of the current transition
	nextAt    float64 // when the next transition begins
}

// opacityAt evaluates the current transition at time t.
func (s *Star) opacityAt(t float64) float64 {
	o := lerp(s.from, s.to, easeInOut(progress(t, s.startedAt, s.Period)))
	return clamp(o, config.StarMinOpacity, config.StarMaxOpacity)
}

// Starfield owns a fixed set of twinkling stars.
type Starfield struct {
	stars []Star
	rng   *rand.Rand
}

// NewStarfield scatters cfg.StarCount stars over the top half of the sky
func NewStarfield(cfg config.Config, rng *rand.Rand) *Starfield {
	f := &Starfield{
		stars: make([]Star, cfg.StarCount),
		rng:   rng,
	}
	for i := range f.stars {
		opacity := f.randomOpacity()
		period := config.StarMinPeriod + rng.Float64()*(config.StarMaxPeriod-config.StarMinPeriod)
		f.stars[i] = Star{
			ID:      StarID(i + 1),
			X:       rng.Float64(),
			Y:       rng.Float64() * config.StarMaxY,
			Size:    config.StarMinSize + rng.Float64()*(config.StarMaxSize-config.StarMinSize),
			Opacity: opacity,
			Period:  period,
			from:    opacity,
			to:      opacity,
			nextAt:  period,
		}
	}
	return f
}

func (f *Starfield) randomOpacity() float64 {
	return config.StarMinOpacity + f.rng.Float64()*(config.StarMaxOpacity-config.StarMinOpacity)
}

// Advance moves every star to time now. Each star whose period elapsed starts
// a fresh fade toward a new random opacity, beginning at the exact boundary so
// a long frame does not skip or shorten transitions.
func (f *Starfield) Advance(now float64) {
	for i := range f.stars {
		s := &f.stars[i]
		for now >= s.nextAt {
			s.from = s.opacityAt(s.nextAt)
			s.to = f.randomOpacity()
			s.startedAt = s.nextAt
			s.nextAt += s.Period
		}
		s.Opacity = s.opacityAt(now)
	}
}

// Stars returns a snapshot ordered by id.
func (f *Starfield) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

// Len returns the number of stars.
func (f *Starfield) Len() int {
	return len(f.stars)
}
