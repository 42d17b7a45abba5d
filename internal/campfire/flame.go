package campfire

import (
	"image/color"
	"math/rand"
	"slices"

	"golang.org/x/image/colornames"

	"github.com/olivierh59500/campfire-go/internal/config"
)

// Flame colors at birth and at the end of the drift stage
var (
	FlameBirthColor = colornames.Yellow
	FlameDeathColor = colornames.Red
)

// FlameID identifies a flame. Ids are never reused within one emitter.
type FlameID uint64

// FlameSeed is everything fixed at spawn time.
type FlameSeed struct {
	ID        FlameID
	SpawnedAt float64
	DriftX    float64 // final lateral offset
}

// Flame is the sampled state of one flame particle.
type Flame struct {
	FlameSeed
	Size             float64
	OffsetX, OffsetY float64
	Opacity          float64
	Color            color.RGBA
	Circle           bool    // false while still a diamond
	Corner           float64 // drawn corner radius, before clamping to Size/2
}

// FlameAt samples a flame at time now. Before the grow stage ends the flame
// only scales up; after it, the drift stage moves, shrinks, reddens and rounds it.
func FlameAt(cfg config.Config, seed FlameSeed, now float64) Flame {
	age := now - seed.SpawnedAt
	if age < 0 {
		age = 0
	}

	f := Flame{
		FlameSeed: seed,
		Opacity:   1,
		Color:     FlameBirthColor,
		Corner:    config.FlameCornerStart,
	}

	if age < cfg.FlameGrowDuration {
		f.Size = cfg.FlamePeakSize * easeOut(progress(age, 0, cfg.FlameGrowDuration))
		return f
	}

	e := easeInOut(progress(age, cfg.FlameGrowDuration, cfg.FlameLifetime))
	f.Size = lerp(cfg.FlamePeakSize, 0, e)
	f.OffsetX = lerp(0, seed.DriftX, e)
	f.OffsetY = lerp(0, -cfg.FlameRise, e)
	f.Color = lerpColor(FlameBirthColor, FlameDeathColor, e)
	f.Circle = true
	f.Corner = lerp(config.FlameCornerStart, config.FlameCornerEnd, e)
	if cfg.FadeOut {
		f.Opacity = 1 - e
	}
	return f
}

// Emitter spawns flames on a fixed interval and retires them after a fixed lifetime.
// The live set is keyed by id so removal never disturbs other flames.
type Emitter struct {
	cfg       config.Config
	rng       *rand.Rand
	live      map[FlameID]*Flame
	lastID    FlameID
	nextSpawn float64
}

// NewEmitter creates an emitter whose first spawn is one interval after time zero
func NewEmitter(cfg config.Config, rng *rand.Rand) *Emitter {
	return &Emitter{
		cfg:       cfg,
		rng:       rng,
		live:      make(map[FlameID]*Flame),
		nextSpawn: cfg.SpawnInterval(),
	}
}

// Advance runs every spawn that fell due up to now, retires expired flames and
// samples the rest.
func (e *Emitter) Advance(now float64) {
	interval := e.cfg.SpawnInterval()
	for now >= e.nextSpawn {
		e.Spawn(e.nextSpawn)
		e.nextSpawn += interval
	}

	expiry := e.cfg.FlameExpiry()
	for id, f := range e.live {
		if now-f.SpawnedAt > expiry {
			delete(e.live, id)
			continue
		}
		*f = FlameAt(e.cfg, f.FlameSeed, now)
	}
}

// Spawn adds a flame born at time at with a random lateral drift.
func (e *Emitter) Spawn(at float64) FlameID {
	drift := (e.rng.Float64()*2 - 1) * e.cfg.FlameDriftX
	return e.spawn(at, drift)
}

func (e *Emitter) spawn(at, driftX float64) FlameID {
	e.lastID++
	seed := FlameSeed{ID: e.lastID, SpawnedAt: at, DriftX: driftX}
	f := FlameAt(e.cfg, seed, at)
	e.live[seed.ID] = &f
	return seed.ID
}

// Remove drops a flame. Unknown ids are ignored.
func (e *Emitter) Remove(id FlameID) {
	delete(e.live, id)
}

// Flame returns the current state of a live flame.
func (e *Emitter) Flame(id FlameID) (Flame, bool) {
	f, ok := e.live[id]
	if !ok {
		return Flame{}, false
	}
	return *f, true
}

// Live returns the live flames oldest first, which is also back-to-front draw order.
func (e *Emitter) Live() []Flame {
	out := make([]Flame, 0, len(e.live))
	for _, f := range e.live {
		out = append(out, *f)
	}
	slices.SortFunc(out, func(a, b Flame) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// Len returns the size of the live set.
func (e *Emitter) Len() int {
	return len(e.live)
}
