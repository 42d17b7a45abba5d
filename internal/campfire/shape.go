package campfire

import "math"

// Point is a position in screen units.
type Point struct {
	X, Y float64
}

// cornerSegments is the number of straight pieces per rounded corner
const cornerSegments = 6

// RoundedRect outlines a w×h rectangle centred on (cx, cy) with corner radius r,
// rotated by deg degrees clockwise (screen y grows downward). The radius is
// clamped to half the shorter side, so a square with a large radius comes out as
// a circle.
func RoundedRect(cx, cy, w, h, r, deg float64) []Point {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = clamp(r, 0, math.Min(w, h)/2)
	hw, hh := w/2, h/2

	// Corner arc centres, walked in angle order starting at the bottom-right.
	centres := [4]Point{
		{hw - r, hh - r},
		{-hw + r, hh - r},
		{-hw + r, -hh + r},
		{hw - r, -hh + r},
	}

	sin, cos := math.Sincos(deg * math.Pi / 180)
	pts := make([]Point, 0, 4*(cornerSegments+1))
	for i, c := range centres {
		start := float64(i) * math.Pi / 2
		steps := cornerSegments
		if r == 0 {
			steps = 0
		}
		for k := 0; k <= steps; k++ {
			a := start
			if steps > 0 {
				a += float64(k) / float64(steps) * math.Pi / 2
			}
			x := c.X + r*math.Cos(a)
			y := c.Y + r*math.Sin(a)
			pts = append(pts, Point{
				X: cx + x*cos - y*sin,
				Y: cy + x*sin + y*cos,
			})
		}
	}
	return pts
}
