package render

import (
	"github.com/lixenwraith/tannenbaum/vmath"
)

// Fixed camera looking down -Z at the scene center, slightly above the
// tree midline so the focus point sits dead ahead
const (
	camY     = 2.0
	camZ     = 60.0
	focalLen = 24.0

	// Terminal cells are roughly twice as tall as wide
	cellAspect = 2.0

	minDepth = 0.5
)

type projected struct {
	cx, cy float64 // screen cell coordinates
	extent float64 // half-size in rows
	depth  float64 // camera distance, for painter sorting
	index  int
}

// project maps a world point to screen cells. ok is false behind the
// camera or far enough off-screen that drawing is pointless
func (r *Renderer) project(world vmath.Vec3, halfSize float64, index int) (projected, bool) {
	depth := camZ - world.Z
	if depth < minDepth {
		return projected{}, false
	}
	invZ := focalLen / depth

	viewH := float64(r.h - hudRows)
	scale := viewH * 0.055

	p := projected{
		cx:     float64(r.w)/2 + world.X*invZ*scale*cellAspect,
		cy:     viewH/2 - (world.Y-camY)*invZ*scale,
		extent: halfSize * invZ * scale,
		depth:  depth,
		index:  index,
	}
	margin := p.extent*cellAspect + 2
	if p.cx < -margin || p.cx > float64(r.w)+margin || p.cy < -margin || p.cy > viewH+margin {
		return projected{}, false
	}
	return p, true
}
