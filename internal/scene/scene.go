package scene

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/olivierh59500/campfire-go/internal/campfire"
	"github.com/olivierh59500/campfire-go/internal/config"
)

// Glow is drawn as stacked discs, widest and faintest first
const glowRings = 6

// Scene holds the campfire state. It implements ebiten.Game.
type Scene struct {
	Width, Height float64
	Clock         float64 // seconds since the scene appeared
	TickCount     int

	cfg    config.Config
	dt     float64
	layout campfire.Layout
	stars  *campfire.Starfield
	flames *campfire.Emitter
	glow   *campfire.Glow
	logs   [2]campfire.Log

	white *ebiten.Image // 1x1 source for DrawTriangles
}

// New creates a scene. A zero cfg.Seed picks a time-based seed.
func New(cfg config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, h := float64(cfg.Width), float64(cfg.Height)
	layout := campfire.NewLayout(w, h)
	s := &Scene{
		Width:  w,
		Height: h,
		cfg:    cfg,
		dt:     1 / float64(cfg.TPS),
		layout: layout,
		stars:  campfire.NewStarfield(cfg, rng),
		flames: campfire.NewEmitter(cfg, rng),
		glow:   campfire.NewGlow(seed),
		logs:   campfire.Logs(layout.LogX, layout.LogY),
	}
	return s, nil
}

// Update is called each tick by Ebitengine. One tick advances every star,
// flame and the glow to the same clock.
func (s *Scene) Update() error {
	s.TickCount++
	s.Clock = float64(s.TickCount) * s.dt

	s.stars.Advance(s.Clock)
	s.flames.Advance(s.Clock)
	s.glow.Advance(s.Clock)
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	s.drawStars(screen)
	s.drawGlow(screen)
	for _, f := range s.flames.Live() {
		s.drawFlame(screen, f)
	}
	for _, l := range s.logs {
		s.fillPolygon(screen, l.Outline(), l.Color, 1)
	}

	if s.cfg.Debug {
		msg := fmt.Sprintf("TPS %.0f  t=%.1fs  stars %d  flames %d",
			ebiten.ActualTPS(), s.Clock, s.stars.Len(), s.flames.Len())
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}
}

// Layout returns the logical screen size
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(s.Width), int(s.Height)
}

// Stars returns the current star snapshot.
func (s *Scene) Stars() []campfire.Star {
	return s.stars.Stars()
}

// Flames returns the live flames, oldest first.
func (s *Scene) Flames() []campfire.Flame {
	return s.flames.Live()
}

// GlowIntensity returns the current ember glow strength.
func (s *Scene) GlowIntensity() float64 {
	return s.glow.Intensity
}

func (s *Scene) drawStars(screen *ebiten.Image) {
	for _, st := range s.stars.Stars() {
		x := st.X * s.Width
		y := st.Y * s.Height
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(st.Size/2), withAlpha(colornames.White, st.Opacity), true)
	}
}

func (s *Scene) drawGlow(screen *ebiten.Image) {
	cx := float32(s.layout.FlameX)
	cy := float32(s.layout.LogY)
	for i := 0; i < glowRings; i++ {
		k := float64(glowRings-i) / glowRings
		r := float32(config.GlowRadius * k)
		a := s.glow.Intensity * (1 - k) * 0.35
		vector.DrawFilledCircle(screen, cx, cy, r, withAlpha(colornames.Orangered, a), true)
	}
}

func (s *Scene) drawFlame(screen *ebiten.Image, f campfire.Flame) {
	if f.Size <= 0 {
		return
	}
	x := s.layout.FlameX + f.OffsetX
	y := s.layout.FlameY + f.OffsetY
	pts := campfire.RoundedRect(x, y, f.Size, f.Size, f.Corner, 45)
	s.fillPolygon(screen, pts, f.Color, f.Opacity)
}

// fillPolygon fills a convex outline with a flat color
func (s *Scene) fillPolygon(screen *ebiten.Image, pts []campfire.Point, clr color.RGBA, opacity float64) {
	if len(pts) < 3 || opacity <= 0 {
		return
	}
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(opacity)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, s.white, op)
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}
