package grow

import (
	"strconv"

	"chromagrow/internal/core"
	"chromagrow/internal/render"
)

var _ core.Sim = (*Engine)(nil)

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "grow" }

// Size returns the canvas dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.size, H: e.size} }

// FillRGBA paints the current canvas into buf.
func (e *Engine) FillRGBA(buf []byte) { render.FillRGBA(buf, e.grid, e.colorSize) }

// Parameters reports the run configuration and live counters for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	pct := 0
	if total := len(e.order); total > 0 {
		pct = e.next * 100 / total
	}
	phase := "seeding"
	if e.next >= e.cfg.NumSeeds {
		phase = "growing"
	}
	if e.Done() {
		phase = "done"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "scale", Label: "Scale", Type: core.ParamTypeInt, Value: strconv.Itoa(e.cfg.Scale)},
				{Key: "size", Label: "Canvas", Type: core.ParamTypeInt, Value: strconv.Itoa(e.size)},
				{Key: "seeds", Label: "Seeds", Type: core.ParamTypeInt, Value: strconv.Itoa(e.cfg.NumSeeds)},
				{Key: "seed", Label: "RNG seed", Type: core.ParamTypeUint, Value: strconv.FormatUint(e.cfg.Seed, 10)},
			},
		},
		{
			Name:    "Progress",
			Summary: phase,
			Params: []core.Parameter{
				{Key: "placed", Label: "Placed", Type: core.ParamTypeInt, Value: strconv.Itoa(e.next)},
				{Key: "percent", Label: "Done", Type: core.ParamTypePercent, Value: strconv.Itoa(pct)},
				{Key: "frontier", Label: "Frontier", Type: core.ParamTypeInt, Value: strconv.Itoa(e.frontier.Len()),
					Description: "unused colors next to a placed color"},
				{Key: "unused", Label: "Unused", Type: core.ParamTypeInt, Value: strconv.Itoa(e.unused.Len())},
			},
		},
	}}
}
