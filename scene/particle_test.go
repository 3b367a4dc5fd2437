package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/tannenbaum/vmath"
)

func newTestParticle(id ID, kind Kind) *Particle {
	rng := rand.New(rand.NewSource(42))
	return NewParticle(id, kind, NodeNone, 1.0, rng)
}

func TestUpdate_PositionConverges(t *testing.T) {
	p := newTestParticle(0, KindSphere)
	p.Pos = vmath.Vec3{X: 14, Y: -14, Z: 3}
	p.Target = vmath.Vec3{X: 0, Y: 2, Z: 35}
	initial := vmath.V3Dist(p.Pos, p.Target)

	// 0.92^200 of an initial distance ~38 leaves ~2e-6
	for k := 1; k <= 200; k++ {
		p.Update(ModeTree, FocusNone)
		want := initial * math.Pow(0.92, float64(k))
		got := vmath.V3Dist(p.Pos, p.Target)
		if math.Abs(got-want) > 1e-9*initial {
			t.Fatalf("call %d: distance %g, want %g", k, got, want)
		}
	}
	if vmath.V3Dist(p.Pos, p.Target) > 1e-5 {
		t.Errorf("position did not converge: remaining %g", vmath.V3Dist(p.Pos, p.Target))
	}
}

func TestUpdate_FocusedPhotoGrowsAndFacesViewer(t *testing.T) {
	p := newTestParticle(7, KindPhoto)
	p.Rot.Yaw = 1.2

	for i := 0; i < 300; i++ {
		p.Update(ModeFocus, 7)
	}

	if math.Abs(p.Scale-p.InitialScale()*4.5) > 1e-6 {
		t.Errorf("focused photo scale = %g, want ~%g", p.Scale, p.InitialScale()*4.5)
	}
	if math.Abs(p.Rot.Yaw) > 1e-6 {
		t.Errorf("focused photo yaw should relax to zero, got %g", p.Rot.Yaw)
	}
}

func TestUpdate_NonTargetShrinksInFocus(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		id   ID
	}{
		{"Other photo", KindPhoto, 3},
		{"Ornament box", KindBox, 1},
		{"Candy cane", KindCandy, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParticle(tt.id, tt.kind)
			for i := 0; i < 300; i++ {
				p.Update(ModeFocus, 99)
			}
			if p.Scale > 0.002 {
				t.Errorf("expected near-zero scale, got %g", p.Scale)
			}
		})
	}
}

func TestUpdate_ScaleRestoredOutsideFocus(t *testing.T) {
	p := newTestParticle(1, KindBox)
	for i := 0; i < 300; i++ {
		p.Update(ModeFocus, 99)
	}
	for i := 0; i < 300; i++ {
		p.Update(ModeTree, FocusNone)
	}
	if math.Abs(p.Scale-p.InitialScale()) > 1e-6 {
		t.Errorf("scale should return to initial %g, got %g", p.InitialScale(), p.Scale)
	}
}

func TestUpdate_ScatterTumblesForever(t *testing.T) {
	p := newTestParticle(0, KindCandy)
	before := p.Rot
	p.Update(ModeScatter, FocusNone)
	step1 := vmath.Euler{
		Pitch: p.Rot.Pitch - before.Pitch,
		Yaw:   p.Rot.Yaw - before.Yaw,
		Roll:  p.Rot.Roll - before.Roll,
	}
	prev := p.Rot
	p.Update(ModeScatter, FocusNone)
	step2 := vmath.Euler{
		Pitch: p.Rot.Pitch - prev.Pitch,
		Yaw:   p.Rot.Yaw - prev.Yaw,
		Roll:  p.Rot.Roll - prev.Roll,
	}
	// Drift velocity is assigned once at construction and never changes
	if math.Abs(step1.Pitch-step2.Pitch) > 1e-12 ||
		math.Abs(step1.Yaw-step2.Yaw) > 1e-12 ||
		math.Abs(step1.Roll-step2.Roll) > 1e-12 {
		t.Errorf("tumble steps differ: %+v vs %+v", step1, step2)
	}
	if step1 == (vmath.Euler{}) {
		t.Error("expected non-zero drift")
	}
}

func TestUpdate_UprightDampingOutsideScatter(t *testing.T) {
	p := newTestParticle(0, KindBox)
	p.Rot = vmath.Euler{Pitch: 0.8, Yaw: 0.5, Roll: -0.6}

	p.Update(ModeTree, FocusNone)
	if math.Abs(p.Rot.Pitch-0.8*0.92) > 1e-12 || math.Abs(p.Rot.Roll+0.6*0.92) > 1e-12 {
		t.Errorf("pitch/roll should damp by 0.92, got %+v", p.Rot)
	}
	if p.Rot.Yaw != 0.5 {
		t.Errorf("yaw must not be damped outside SCATTER, got %g", p.Rot.Yaw)
	}

	for i := 0; i < 500; i++ {
		p.Update(ModeTree, FocusNone)
	}
	if math.Abs(p.Rot.Pitch) > 1e-6 || math.Abs(p.Rot.Roll) > 1e-6 {
		t.Errorf("expected upright recovery, got %+v", p.Rot)
	}
}

func TestGraph_WorldComposesParents(t *testing.T) {
	g := NewGraph()
	root := g.Add(NodeNone)
	child := g.Add(root)

	g.SetPos(root, vmath.Vec3{X: 10})
	g.SetRot(root, vmath.Euler{Yaw: math.Pi / 2})
	g.SetPos(child, vmath.Vec3{Z: 5})

	// Child offset (0,0,5) yawed a quarter turn lands on (5,0,0),
	// then translates by the root position
	got := g.World(child, vmath.Vec3{})
	if math.Abs(got.X-15) > 1e-9 || math.Abs(got.Y) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("world position = %v, want (15,0,0)", got)
	}
}
