package campfire

import (
	"math"
	"testing"

	"github.com/olivierh59500/campfire-go/internal/config"
)

func TestRoundedRect_SharpDiamond(t *testing.T) {
	pts := RoundedRect(10, 20, 2, 2, 0, 45)
	if len(pts) != 4 {
		t.Fatalf("sharp rect should have 4 corners, got %d", len(pts))
	}
	for _, p := range pts {
		dx, dy := p.X-10, p.Y-20
		// Corners of a rotated square land on the axes.
		if math.Abs(dx) > eps && math.Abs(dy) > eps {
			t.Fatalf("diamond corner (%.3f,%.3f) is not on an axis", dx, dy)
		}
		if r := math.Hypot(dx, dy); math.Abs(r-math.Sqrt2) > eps {
			t.Fatalf("diamond corner at distance %.4f, want %.4f", r, math.Sqrt2)
		}
	}
}

func TestRoundedRect_FullRadiusIsCircle(t *testing.T) {
	pts := RoundedRect(0, 0, 30, 30, config.FlameCornerEnd, 45)
	for _, p := range pts {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-15) > eps {
			t.Fatalf("fully rounded square point at radius %.4f, want 15", r)
		}
	}
}

func TestRoundedRect_Degenerate(t *testing.T) {
	if pts := RoundedRect(0, 0, 0, 10, 5, 0); pts != nil {
		t.Fatalf("zero-width rect should have no outline, got %d points", len(pts))
	}
}

func TestRoundedRect_StaysInsideBounds(t *testing.T) {
	pts := RoundedRect(0, 0, 300, 40, 5, 0)
	for _, p := range pts {
		if math.Abs(p.X) > 150+eps || math.Abs(p.Y) > 20+eps {
			t.Fatalf("outline point (%.2f,%.2f) outside the 300x40 box", p.X, p.Y)
		}
	}
}
