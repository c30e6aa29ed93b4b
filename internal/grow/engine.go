// Package grow places every color of a discretized RGB cube exactly once on a
// square canvas so that neighboring pixels get similar colors.
//
// Locations are visited in a seeded random order. The first NumSeeds
// locations receive uniformly random colors. Every later location looks up
// the nearest already placed pixel and takes the closest unused color to
// that pixel's color.
package grow

import (
	"fmt"

	"chromagrow/internal/core"
	"chromagrow/internal/kernel"
	"chromagrow/internal/sampler"
	pcore "chromagrow/pkg/core"
)

// Engine holds the state of one run. It is not safe for concurrent use.
type Engine struct {
	cfg       Config
	size      int
	colorSize int

	spatial []kernel.Offset2
	colors  []kernel.Offset3

	rng      *pcore.RNG
	order    []int32
	grid     *core.Grid
	unused   *sampler.Set
	frontier *Frontier

	next    int
	lastPct int
}

// Generate runs a complete growth pass for cfg.
func Generate(cfg Config) (*core.Grid, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// New validates cfg and prepares a run. The kernels are built once here and
// survive Reset.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		size:      cfg.Size(),
		colorSize: cfg.ColorSize(),
	}
	e.spatial = kernel.Spatial(e.size)
	e.colors = kernel.Color(e.colorSize)
	e.reset()
	return e, nil
}

// Reset restarts the run from an empty canvas using seed.
func (e *Engine) Reset(seed uint64) {
	e.cfg.Seed = seed
	e.reset()
}

func (e *Engine) reset() {
	e.rng = pcore.NewRNG(e.cfg.Seed)
	total := e.size * e.size
	if len(e.order) != total {
		e.order = make([]int32, total)
	}
	for i := range e.order {
		e.order[i] = int32(i)
	}
	e.rng.Shuffle(len(e.order), func(i, j int) { e.order[i], e.order[j] = e.order[j], e.order[i] })

	if e.grid == nil {
		e.grid = core.NewGrid(e.size)
	} else {
		e.grid.Clear()
	}
	e.unused = sampler.NewFullSet(e.cfg.Colors())
	e.frontier = NewFrontier(e.colorSize)
	e.next = 0
	e.lastPct = -1
}

// Run steps until every location holds a color and returns the grid.
// Broken invariants surface as a *PreconditionError.
func (e *Engine) Run() (grid *core.Grid, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*PreconditionError)
			if !ok {
				panic(r)
			}
			grid, err = nil, perr
		}
	}()
	for e.Step() {
	}
	if !e.grid.Complete() || e.unused.Len() != 0 {
		return nil, &PreconditionError{What: fmt.Sprintf(
			"growth pass ended with %d of %d locations filled and %d colors unused",
			e.grid.Filled(), len(e.order), e.unused.Len())}
	}
	return e.grid, nil
}

// Step assigns a color to the next location in visitation order. It returns
// false once every location has been visited.
func (e *Engine) Step() bool {
	if e.next >= len(e.order) {
		return false
	}
	loc := e.Location(e.next)

	var chosen core.ColorBase
	if e.next < e.cfg.NumSeeds {
		key, ok := e.unused.RemoveRandom(e.rng)
		if !ok {
			panic(&PreconditionError{What: "seed color drawn from an empty unused set"})
		}
		chosen = core.ColorBaseFromKey(key, e.colorSize)
	} else {
		chosen = e.closestUnused(e.reference(loc))
	}
	e.place(loc, chosen)
	e.next++
	e.report()
	return true
}

// Location returns the i-th location in visitation order.
func (e *Engine) Location(i int) core.Location {
	idx := int(e.order[i])
	return core.Location{idx / e.size, idx % e.size}
}

// reference returns the color of the placed pixel nearest to loc.
func (e *Engine) reference(loc core.Location) core.ColorBase {
	row, col := loc[0], loc[1]
	for _, o := range e.spatial {
		r, c := row+int(o[0]), col+int(o[1])
		if !e.grid.InBounds(r, c) {
			continue
		}
		if color, ok := e.grid.At(r, c); ok {
			return color
		}
	}
	panic(&PreconditionError{What: fmt.Sprintf("no placed pixel found around (%d, %d)", row, col)})
}

// closestUnused scans the color kernel around ref, at most |frontier| entries
// deep, and falls back to the nearest frontier color.
func (e *Engine) closestUnused(ref core.ColorBase) core.ColorBase {
	limit := min(e.frontier.Len(), len(e.colors))
	for _, o := range e.colors[:limit] {
		r := int(ref[0]) + int(o[0])
		g := int(ref[1]) + int(o[1])
		b := int(ref[2]) + int(o[2])
		if r < 0 || r >= e.colorSize || g < 0 || g >= e.colorSize || b < 0 || b >= e.colorSize {
			continue
		}
		c := core.ColorBase{uint8(r), uint8(g), uint8(b)}
		if e.unused.Contains(c.Key(e.colorSize)) {
			return c
		}
	}
	c, ok := e.frontier.Nearest(ref)
	if !ok {
		panic(&PreconditionError{What: fmt.Sprintf("frontier empty with %d colors unused", e.unused.Len())})
	}
	return c
}

func (e *Engine) place(loc core.Location, c core.ColorBase) {
	e.frontier.Remove(c)
	e.unused.Remove(c.Key(e.colorSize))
	e.frontier.Expand(c, e.unused)
	e.grid.Set(loc[0], loc[1], c)
}

func (e *Engine) report() {
	if e.cfg.Progress == nil {
		return
	}
	pct := e.next * 100 / len(e.order)
	if pct != e.lastPct {
		e.lastPct = pct
		e.cfg.Progress(pct)
	}
}

// Config returns the configuration of the current run.
func (e *Engine) Config() Config { return e.cfg }

// Grid exposes the canvas being filled.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Frontier exposes the boundary colors.
func (e *Engine) Frontier() *Frontier { return e.frontier }

// Unused exposes the set of colors not yet placed, keyed by ColorBase.Key.
func (e *Engine) Unused() *sampler.Set { return e.unused }

// ColorSize returns the number of levels per channel.
func (e *Engine) ColorSize() int { return e.colorSize }

// Steps returns how many locations have been processed.
func (e *Engine) Steps() int { return e.next }

// Total returns the number of locations in the run.
func (e *Engine) Total() int { return len(e.order) }

// Done reports whether every location has been visited.
func (e *Engine) Done() bool { return e.next >= len(e.order) }
