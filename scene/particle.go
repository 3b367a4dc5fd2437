package scene

import (
	"image"
	"math/rand"

	"github.com/lixenwraith/tannenbaum/vmath"
)

// Kind classifies a particle's visual category
type Kind uint8

const (
	KindBox Kind = iota
	KindSphere
	KindCandy
	KindPhoto
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindCandy:
		return "candy"
	case KindPhoto:
		return "photo"
	}
	return "unknown"
}

// ID uniquely identifies a particle for the lifetime of the session
type ID int

// FocusNone marks the absence of a focus target
const FocusNone ID = -1

// Per-call convergence rates and factors. Rates are fractions of the
// remaining distance closed per Update call, so convergence is
// geometric and stable regardless of how often targets change
const (
	posRate     = 0.08
	scaleRate   = 0.10
	yawRate     = 0.10
	uprightDamp = 0.92
	focusBlowup = 4.5
	hiddenScale = 0.001

	driftSpread = 0.05 // max per-axis tumble step in SCATTER, radians/call
)

// Particle wraps one visual element of the scene
// The particle owns its current transform exclusively; only the layout
// engine writes Target
type Particle struct {
	ID   ID
	Kind Kind
	Node NodeID // slot in the scene Graph the renderer composes through

	Pos    vmath.Vec3
	Rot    vmath.Euler
	Scale  float64
	Target vmath.Vec3

	// Tex is the decoded photo surface for KindPhoto, treated opaquely
	Tex image.Image

	initialScale float64
	drift        vmath.Euler
}

// NewParticle creates a particle at the origin with a fixed random
// tumble velocity drawn once from rng and never changed
func NewParticle(id ID, kind Kind, node NodeID, scale float64, rng *rand.Rand) *Particle {
	return &Particle{
		ID:           id,
		Kind:         kind,
		Node:         node,
		Scale:        scale,
		initialScale: scale,
		drift: vmath.Euler{
			Pitch: (rng.Float64() - 0.5) * driftSpread,
			Yaw:   (rng.Float64() - 0.5) * driftSpread,
			Roll:  (rng.Float64() - 0.5) * driftSpread,
		},
	}
}

// InitialScale returns the immutable scale snapshot taken at creation
func (p *Particle) InitialScale() float64 {
	return p.initialScale
}

// Update advances the particle one frame toward its per-mode pose.
// Deterministic given current state, mode and focus id
func (p *Particle) Update(mode Mode, focus ID) {
	p.Pos = vmath.V3Toward(p.Pos, p.Target, posRate)

	switch {
	case mode == ModeFocus && p.Kind == KindPhoto && p.ID == focus:
		// The focused photo grows and turns to face the viewer
		p.Scale = vmath.Toward(p.Scale, p.initialScale*focusBlowup, scaleRate)
		p.Rot.Yaw = vmath.Toward(p.Rot.Yaw, 0, yawRate)
	case mode == ModeFocus:
		// Everything else shrinks out of sight
		p.Scale = vmath.Toward(p.Scale, hiddenScale, scaleRate)
	default:
		p.Scale = vmath.Toward(p.Scale, p.initialScale, scaleRate)
	}

	if mode == ModeScatter {
		p.Rot = vmath.EAdd(p.Rot, p.drift)
	} else {
		p.Rot = vmath.EDamp(p.Rot, uprightDamp)
	}
}
