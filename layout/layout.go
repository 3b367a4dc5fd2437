// Package layout computes per-mode target positions for every particle.
// Targets are recomputed on mode transitions and photo insertions, never
// per frame; particles chase their targets on their own.
package layout

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/tannenbaum/scene"
	"github.com/lixenwraith/tannenbaum/vmath"
)

// Tree spiral: particles descend from apex to base along a dense helix
const (
	TreeMaxRadius = 14.0
	TreeTurns     = 50 * math.Pi // angular span base to tip, ~25 full turns
	TreeHeight    = 28.0

	ScatterInner = 10.0
	ScatterBand  = 15.0

	FocusRingInner = 40.0
	FocusRingBand  = 20.0
	FocusRingRise  = 20.0
)

// FocusPoint is where the selected photo is presented, directly in
// front of the camera
var FocusPoint = vmath.Vec3{X: 0, Y: 2, Z: 35}

// Engine owns the focus-target selection and writes particle targets.
// Randomness is drawn from an injected source so layouts replay
// deterministically under test
type Engine struct {
	rng   *rand.Rand
	focus scene.ID
}

func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng, focus: scene.FocusNone}
}

// Focus returns the currently selected focus target, or FocusNone
func (e *Engine) Focus() scene.ID {
	return e.focus
}

// SelectFocus picks a focus target uniformly among photo particles if
// none is currently set. Re-entering focus without an intervening
// ClearFocus keeps the previous pick
func (e *Engine) SelectFocus(particles []*scene.Particle) {
	if e.focus != scene.FocusNone {
		return
	}
	photos := make([]*scene.Particle, 0, 8)
	for _, p := range particles {
		if p.Kind == scene.KindPhoto {
			photos = append(photos, p)
		}
	}
	if len(photos) == 0 {
		return
	}
	e.focus = photos[e.rng.Intn(len(photos))].ID
}

// ClearFocus drops the selection so the next focus entry re-rolls
func (e *Engine) ClearFocus() {
	e.focus = scene.FocusNone
}

// CalculateTargets rewrites every particle's target position for mode
func (e *Engine) CalculateTargets(mode scene.Mode, particles []*scene.Particle) {
	switch mode {
	case scene.ModeTree:
		e.treeTargets(particles)
	case scene.ModeScatter:
		e.scatterTargets(particles)
	case scene.ModeFocus:
		e.focusTargets(particles)
	}
}

func (e *Engine) treeTargets(particles []*scene.Particle) {
	n := float64(len(particles))
	for i, p := range particles {
		t := float64(i) / n
		radius := TreeMaxRadius * (1 - t)
		angle := t * TreeTurns
		p.Target = vmath.Vec3{
			X: radius * math.Cos(angle),
			Y: t*TreeHeight - TreeHeight/2,
			Z: radius * math.Sin(angle),
		}
	}
}

func (e *Engine) scatterTargets(particles []*scene.Particle) {
	for _, p := range particles {
		// Uniform direction on the sphere: azimuth uniform,
		// cos(zenith) uniform
		theta := e.rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*e.rng.Float64() - 1)
		r := ScatterInner + e.rng.Float64()*ScatterBand
		sp := math.Sin(phi)
		dir := vmath.Vec3{
			X: sp * math.Cos(theta),
			Y: math.Cos(phi),
			Z: sp * math.Sin(theta),
		}
		p.Target = vmath.V3Scale(dir, r)
	}
}

func (e *Engine) focusTargets(particles []*scene.Particle) {
	for _, p := range particles {
		if p.ID == e.focus {
			p.Target = FocusPoint
			continue
		}
		// Banish everything else to a distant ring off-screen
		angle := e.rng.Float64() * 2 * math.Pi
		r := FocusRingInner + e.rng.Float64()*FocusRingBand
		p.Target = vmath.Vec3{
			X: r * math.Cos(angle),
			Y: (e.rng.Float64() - 0.5) * 2 * FocusRingRise,
			Z: r * math.Sin(angle),
		}
	}
}
