// Package engine owns the authoritative scene state: the mode state
// machine and the per-frame tick that drives gesture sampling, particle
// updates and frame submission in a fixed order.
package engine

import (
	"image"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/tannenbaum/gesture"
	"github.com/lixenwraith/tannenbaum/layout"
	"github.com/lixenwraith/tannenbaum/scene"
	"github.com/lixenwraith/tannenbaum/vmath"
)

// Whole-scene steering: the root orientation chases the pointer at a
// fixed convergence rate per tick
const (
	steerRate       = 0.05
	steerYawRange   = 0.5
	steerPitchRange = 0.3

	ambientDrift = 0.002 // decoration group yaw advance per tick

	decorScaleMin  = 0.7
	decorScaleBand = 0.6
	photoScale     = 1.6
)

// Sink receives the composed scene at the end of every tick
type Sink interface {
	Submit(e *Engine)
}

// Config assembles an engine. Zero-value callbacks and sinks are
// simply skipped
type Config struct {
	Seed    int64
	Boxes   int
	Spheres int
	Candies int

	// Source supplies detection frames; nil runs gesture-inert
	Source gesture.Source

	// Sink is handed the scene at the end of each tick
	Sink Sink

	// OnReady fires exactly once, after initial population and the
	// first layout pass
	OnReady func()

	// OnMode fires on every committed transition
	OnMode func(from, to scene.Mode)
}

func DefaultConfig() Config {
	return Config{
		Seed:    1,
		Boxes:   120,
		Spheres: 100,
		Candies: 60,
	}
}

// Engine is single-goroutine: every method except Close must be called
// from the goroutine that drives Tick
type Engine struct {
	cfg    Config
	rng    *rand.Rand
	interp *gesture.Interpreter
	lay    *layout.Engine

	graph     *scene.Graph
	root      scene.NodeID
	deco      scene.NodeID
	particles []*scene.Particle
	nextID    scene.ID

	mode   scene.Mode
	closed atomic.Bool
}

// New populates the decorative particles, computes the first tree
// layout, and fires the ready callback
func New(cfg Config) *Engine {
	rng := rand.New(rand.NewSource(cfg.Seed))
	e := &Engine{
		cfg:    cfg,
		rng:    rng,
		interp: gesture.NewInterpreter(),
		lay:    layout.New(rng),
		graph:  scene.NewGraph(),
		mode:   scene.ModeTree,
	}
	e.root = e.graph.Add(scene.NodeNone)
	e.deco = e.graph.Add(e.root)

	e.spawn(scene.KindBox, cfg.Boxes)
	e.spawn(scene.KindSphere, cfg.Spheres)
	e.spawn(scene.KindCandy, cfg.Candies)

	e.lay.CalculateTargets(e.mode, e.particles)

	if cfg.OnReady != nil {
		cfg.OnReady()
	}
	return e
}

func (e *Engine) spawn(kind scene.Kind, count int) {
	for i := 0; i < count; i++ {
		sc := decorScaleMin + e.rng.Float64()*decorScaleBand
		node := e.graph.Add(e.root)
		p := scene.NewParticle(e.nextID, kind, node, sc, e.rng)
		e.nextID++
		e.particles = append(e.particles, p)
	}
}

// Mode returns the current authoritative mode
func (e *Engine) Mode() scene.Mode {
	return e.mode
}

// Focus returns the current focus target, FocusNone outside FOCUS
func (e *Engine) Focus() scene.ID {
	return e.lay.Focus()
}

// Particles returns the ordered live collection. Callers must not
// reorder it; tree placement depends on index
func (e *Engine) Particles() []*scene.Particle {
	return e.particles
}

func (e *Engine) Graph() *scene.Graph {
	return e.graph
}

func (e *Engine) Root() scene.NodeID {
	return e.root
}

func (e *Engine) Deco() scene.NodeID {
	return e.deco
}

// Pointer returns the last derived pointer coordinates in [-1, 1]
func (e *Engine) Pointer() (x, y float64) {
	return e.interp.Pointer()
}

// Request applies a mode transition. Requesting the current mode is a
// no-op: targets are not recomputed and the focus pick is untouched
func (e *Engine) Request(m scene.Mode) bool {
	if m == e.mode {
		return false
	}
	from := e.mode
	e.mode = m

	if m == scene.ModeFocus {
		e.lay.SelectFocus(e.particles)
	} else if from == scene.ModeFocus {
		e.lay.ClearFocus()
	}
	e.lay.CalculateTargets(m, e.particles)

	if e.cfg.OnMode != nil {
		e.cfg.OnMode(from, m)
	}
	return true
}

// Tick advances the scene one frame: sample gestures, apply any
// transition, steer the scene toward the pointer, update every
// particle, advance the ambient drift, submit the frame
func (e *Engine) Tick() {
	if e.closed.Load() {
		return
	}

	if e.cfg.Source != nil {
		if m, ok := e.interp.Sample(e.cfg.Source.Latest()); ok {
			e.Request(m)
		}
	}

	px, py := e.interp.Pointer()
	rot := e.graph.Rot(e.root)
	rot.Yaw = vmath.Toward(rot.Yaw, px*steerYawRange, steerRate)
	rot.Pitch = vmath.Toward(rot.Pitch, py*steerPitchRange, steerRate)
	e.graph.SetRot(e.root, rot)

	focus := e.lay.Focus()
	for _, p := range e.particles {
		p.Update(e.mode, focus)
		e.graph.SetPos(p.Node, p.Pos)
		e.graph.SetRot(p.Node, p.Rot)
	}

	deco := e.graph.Rot(e.deco)
	deco.Yaw += ambientDrift
	e.graph.SetRot(e.deco, deco)

	if e.cfg.Sink != nil {
		e.cfg.Sink.Submit(e)
	}
}

// AddPhoto inserts a photo particle and recomputes layout targets so
// the next tick already sees a consistent collection. tex must be
// fully decoded; the core treats it opaquely
func (e *Engine) AddPhoto(tex image.Image) *scene.Particle {
	node := e.graph.Add(e.root)
	p := scene.NewParticle(e.nextID, scene.KindPhoto, node, photoScale, e.rng)
	e.nextID++
	p.Tex = tex
	e.particles = append(e.particles, p)

	e.lay.CalculateTargets(e.mode, e.particles)
	return p
}

// Close makes all further ticks inert and releases the frame source.
// Safe to call more than once
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	if e.cfg.Source != nil {
		return e.cfg.Source.Close()
	}
	return nil
}
