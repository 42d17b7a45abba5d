package campfire

import (
	"testing"

	"github.com/olivierh59500/campfire-go/internal/config"
)

func TestLogs_CrossedSymmetrically(t *testing.T) {
	logs := Logs(100, 200)
	if logs[0].Angle != -logs[1].Angle || logs[0].Angle == 0 {
		t.Fatalf("logs should cross at ±%.0f°, got %.1f and %.1f", config.LogAngle, logs[0].Angle, logs[1].Angle)
	}
	for i, l := range logs {
		if l.CX != 100 || l.CY != 200 {
			t.Fatalf("log %d not centred on the anchor: (%.1f,%.1f)", i, l.CX, l.CY)
		}
		if l.Width != config.LogWidth || l.Height != config.LogHeight {
			t.Fatalf("log %d size %.0fx%.0f", i, l.Width, l.Height)
		}
		if len(l.Outline()) == 0 {
			t.Fatalf("log %d has no outline", i)
		}
	}
	if logs[0].Color == logs[1].Color {
		t.Fatal("crossed logs should be two shades of brown")
	}
}

func TestLayout_FireBelowSky(t *testing.T) {
	l := NewLayout(config.ScreenWidth, config.ScreenHeight)
	if l.FlameX != config.ScreenWidth/2 || l.LogX != l.FlameX {
		t.Fatalf("fire column not centred: flame x %.1f, log x %.1f", l.FlameX, l.LogX)
	}
	if l.FlameY <= config.StarMaxY*config.ScreenHeight {
		t.Fatalf("flame origin %.1f overlaps the star band", l.FlameY)
	}
	if l.LogY <= l.FlameY {
		t.Fatalf("logs (%.1f) should sit below the flame origin (%.1f)", l.LogY, l.FlameY)
	}
	if l.LogY >= config.ScreenHeight {
		t.Fatalf("logs off screen at %.1f", l.LogY)
	}
}
