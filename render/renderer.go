// Package render draws the particle scene into a terminal: perspective
// projection, far-to-near painter ordering, per-kind glyph styling and
// photo thumbnails sampled into cell colors.
package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tannenbaum/engine"
	"github.com/lixenwraith/tannenbaum/scene"
	"github.com/lixenwraith/tannenbaum/vmath"
)

const hudRows = 1

// Ornament palette cycles by particle id so the tree reads festive
// rather than uniform
var (
	boxColors = []tcell.Color{
		tcell.NewRGBColor(220, 40, 50),
		tcell.NewRGBColor(235, 185, 60),
		tcell.NewRGBColor(60, 90, 220),
		tcell.NewRGBColor(50, 170, 80),
	}
	sphereColors = []tcell.Color{
		tcell.NewRGBColor(230, 230, 240),
		tcell.NewRGBColor(255, 215, 130),
		tcell.NewRGBColor(180, 210, 255),
	}
	candyRed   = tcell.NewRGBColor(225, 50, 60)
	candyWhite = tcell.NewRGBColor(245, 245, 245)
	starColor  = tcell.NewRGBColor(255, 240, 170)
	hudColor   = tcell.NewRGBColor(110, 110, 120)
)

// candySpin maps a roll angle to a spinner glyph so tumbling reads in
// SCATTER mode
var candySpin = []rune{'|', '/', '-', '\\'}

// Renderer owns the tcell screen surface. All methods must run on the
// frame-loop goroutine
type Renderer struct {
	screen tcell.Screen
	w, h   int

	showHUD bool
	thumbs  map[scene.ID]*thumb
	stars   []vmath.Vec3
}

func New(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	r := &Renderer{
		screen:  screen,
		w:       w,
		h:       h,
		showHUD: true,
		thumbs:  make(map[scene.ID]*thumb),
	}
	r.initStars()
	return r
}

// initStars lays a fixed twinkle ring into the decoration group's
// local space; the group's ambient yaw drift carries them around
func (r *Renderer) initStars() {
	const starCount = 24
	const starRadius = 19.0
	r.stars = make([]vmath.Vec3, starCount)
	for i := range r.stars {
		a := float64(i) / starCount * 2 * math.Pi
		r.stars[i] = vmath.Vec3{
			X: starRadius * math.Cos(a),
			Y: math.Sin(a*3) * 6,
			Z: starRadius * math.Sin(a),
		}
	}
}

// Resize recomputes the projection surface after a viewport change
func (r *Renderer) Resize(w, h int) {
	r.w, r.h = w, h
	r.screen.Sync()
}

// ToggleHUD flips the overlay line. Purely cosmetic; the scene is
// unaffected
func (r *Renderer) ToggleHUD() {
	r.showHUD = !r.showHUD
}

// Submit composes and displays one frame
func (r *Renderer) Submit(e *engine.Engine) {
	r.screen.Clear()

	g := e.Graph()
	particles := e.Particles()

	projs := make([]projected, 0, len(particles)+len(r.stars))
	for i, p := range particles {
		world := g.World(p.Node, vmath.Vec3{})
		half := baseExtent(p.Kind) * p.Scale
		if pr, ok := r.project(world, half, i); ok {
			projs = append(projs, pr)
		}
	}

	// Painter's algorithm: farthest first so near particles overdraw
	sort.Slice(projs, func(i, j int) bool {
		return projs[i].depth > projs[j].depth
	})

	r.drawStars(g, e.Deco())
	for _, pr := range projs {
		r.drawParticle(particles[pr.index], pr)
	}

	if r.showHUD {
		r.drawHUD(e)
	}
	r.screen.Show()
}

func baseExtent(k scene.Kind) float64 {
	switch k {
	case scene.KindSphere:
		return 0.5
	case scene.KindCandy:
		return 0.7
	case scene.KindPhoto:
		return 1.1
	}
	return 0.55
}

func (r *Renderer) drawStars(g *scene.Graph, deco scene.NodeID) {
	style := tcell.StyleDefault.Foreground(starColor)
	for i, local := range r.stars {
		world := g.World(deco, local)
		pr, ok := r.project(world, 0.1, i)
		if !ok {
			continue
		}
		glyph := '·'
		if i%3 == 0 {
			glyph = '✦'
		}
		r.screen.SetContent(int(pr.cx), int(pr.cy), glyph, nil, style)
	}
}

func (r *Renderer) drawParticle(p *scene.Particle, pr projected) {
	switch p.Kind {
	case scene.KindPhoto:
		r.drawPhoto(p, pr)
	case scene.KindCandy:
		r.drawCandy(p, pr)
	case scene.KindSphere:
		r.drawBlock(pr, sphereColors[int(p.ID)%len(sphereColors)], '●')
	default:
		r.drawBlock(pr, boxColors[int(p.ID)%len(boxColors)], '▪')
	}
}

// drawBlock fills the projected extent with a colored block, falling
// back to a single glyph when the particle is sub-cell sized
func (r *Renderer) drawBlock(pr projected, color tcell.Color, glyph rune) {
	if pr.extent < 0.5 {
		r.setCell(int(pr.cx), int(pr.cy), glyph, tcell.StyleDefault.Foreground(color))
		return
	}
	style := tcell.StyleDefault.Background(color)
	r.fillExtent(pr, func(x, y int) {
		r.setCell(x, y, ' ', style)
	})
}

func (r *Renderer) drawCandy(p *scene.Particle, pr projected) {
	spin := candySpin[int(math.Abs(p.Rot.Roll)/(math.Pi/4))%len(candySpin)]
	if pr.extent < 0.5 {
		r.setCell(int(pr.cx), int(pr.cy), spin, tcell.StyleDefault.Foreground(candyRed))
		return
	}
	r.fillExtent(pr, func(x, y int) {
		color := candyRed
		if (x+y)%2 == 0 {
			color = candyWhite
		}
		r.setCell(x, y, spin, tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack))
	})
}

func (r *Renderer) drawPhoto(p *scene.Particle, pr projected) {
	th := r.thumbs[p.ID]
	if th == nil {
		th = newThumb(p.Tex)
		r.thumbs[p.ID] = th
	}

	if pr.extent < 0.5 {
		r.setCell(int(pr.cx), int(pr.cy), '▣', tcell.StyleDefault.Foreground(candyWhite))
		return
	}

	minX := int(pr.cx - pr.extent*cellAspect)
	maxX := int(pr.cx + pr.extent*cellAspect)
	minY := int(pr.cy - pr.extent)
	maxY := int(pr.cy + pr.extent)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			u := float64(x-minX) / math.Max(1, float64(maxX-minX))
			v := float64(y-minY) / math.Max(1, float64(maxY-minY))
			r.setCell(x, y, ' ', tcell.StyleDefault.Background(th.at(u, v)))
		}
	}
}

// fillExtent visits every cell of the projected particle rectangle
func (r *Renderer) fillExtent(pr projected, visit func(x, y int)) {
	minX := int(pr.cx - pr.extent*cellAspect)
	maxX := int(pr.cx + pr.extent*cellAspect)
	minY := int(pr.cy - pr.extent)
	maxY := int(pr.cy + pr.extent)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			visit(x, y)
		}
	}
}

func (r *Renderer) setCell(x, y int, glyph rune, style tcell.Style) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h-hudRows {
		return
	}
	r.screen.SetContent(x, y, glyph, nil, style)
}

func (r *Renderer) drawHUD(e *engine.Engine) {
	px, py := e.Pointer()
	s := fmt.Sprintf(" %s  particles:%d  nodes:%d  pointer:%+.2f,%+.2f   1/2/3:mode  u:photo  h:hud  q:quit",
		e.Mode(), len(e.Particles()), e.Graph().Len(), px, py)
	style := tcell.StyleDefault.Foreground(hudColor)
	y := r.h - 1
	for i, ch := range s {
		if i >= r.w {
			break
		}
		r.screen.SetContent(i, y, ch, nil, style)
	}
}
