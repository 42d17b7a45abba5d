package campfire

import (
	"testing"

	"golang.org/x/image/colornames"
)

func TestEasing_Endpoints(t *testing.T) {
	for name, fn := range map[string]func(float64) float64{
		"easeOut":   easeOut,
		"easeInOut": easeInOut,
	} {
		if fn(0) != 0 || fn(1) != 1 {
			t.Fatalf("%s: endpoints (%.3f, %.3f), want (0, 1)", name, fn(0), fn(1))
		}
		if fn(-1) != 0 || fn(2) != 1 {
			t.Fatalf("%s: input outside [0,1] should clamp", name)
		}
		prev := 0.0
		for p := 0.01; p <= 1; p += 0.01 {
			v := fn(p)
			if v < prev {
				t.Fatalf("%s: not monotonic at %.2f", name, p)
			}
			prev = v
		}
	}
	if easeInOut(0.5) != 0.5 {
		t.Fatalf("easeInOut should be symmetric about 0.5, got %.4f", easeInOut(0.5))
	}
}

func TestProgress_ZeroDuration(t *testing.T) {
	if progress(1, 1, 0) != 1 || progress(0.5, 1, 0) != 0 {
		t.Fatal("zero-length window should jump from 0 to 1 at its start")
	}
}

func TestLerpColor_Endpoints(t *testing.T) {
	if got := lerpColor(colornames.Yellow, colornames.Red, 0); got != colornames.Yellow {
		t.Fatalf("p=0: got %v", got)
	}
	if got := lerpColor(colornames.Yellow, colornames.Red, 1); got != colornames.Red {
		t.Fatalf("p=1: got %v", got)
	}
}
