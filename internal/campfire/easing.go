package campfire

import (
	"image/color"
	"math"
)

// easeOut decelerates into the target (cubic)
func easeOut(p float64) float64 {
	p = clamp(p, 0, 1)
	q := 1 - p
	return 1 - q*q*q
}

// easeInOut accelerates then decelerates (cubic)
func easeInOut(p float64) float64 {
	p = clamp(p, 0, 1)
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

// progress maps t into [0,1] over the window [start, start+duration].
// A zero-length window is already complete.
func progress(t, start, duration float64) float64 {
	if duration <= 0 {
		if t >= start {
			return 1
		}
		return 0
	}
	return clamp((t-start)/duration, 0, 1)
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

func lerpColor(a, b color.RGBA, p float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(lerp(float64(a.R), float64(b.R), p))),
		G: uint8(math.Round(lerp(float64(a.G), float64(b.G), p))),
		B: uint8(math.Round(lerp(float64(a.B), float64(b.B), p))),
		A: uint8(math.Round(lerp(float64(a.A), float64(b.A), p))),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
