package campfire

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/olivierh59500/campfire-go/internal/config"
)

// Log is one of the crossed logs under the fire.
type Log struct {
	CX, CY        float64
	Width, Height float64
	Corner        float64
	Angle         float64 // degrees
	Color         color.RGBA
}

// Outline returns the log's rotated outline.
func (l Log) Outline() []Point {
	return RoundedRect(l.CX, l.CY, l.Width, l.Height, l.Corner, l.Angle)
}

// Logs returns the two crossed logs centred on (cx, cy), back one first.
func Logs(cx, cy float64) [2]Log {
	light := Log{
		CX: cx, CY: cy,
		Width: config.LogWidth, Height: config.LogHeight,
		Corner: config.LogCorner,
		Angle:  -config.LogAngle,
		Color:  colornames.Sienna,
	}
	dark := light
	dark.Angle = config.LogAngle
	dark.Color = colornames.Saddlebrown
	return [2]Log{light, dark}
}

// Layout holds the anchor points of the foreground column.
type Layout struct {
	FlameX, FlameY float64 // origin flames are offset from
	LogX, LogY     float64
}

// NewLayout centres the fire column horizontally and pushes it down by the
// top padding, leaving the upper sky to the stars.
func NewLayout(width, height float64) Layout {
	cx := width / 2
	anchor := (height + config.SceneTopPadding) / 2
	return Layout{
		FlameX: cx,
		FlameY: anchor + config.FlameSink,
		LogX:   cx,
		LogY:   anchor + config.LogOffsetY,
	}
}
