package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lixenwraith/tannenbaum/vmath"
)

func testRenderer(w, h int) *Renderer {
	r := &Renderer{w: w, h: h, showHUD: true}
	r.initStars()
	return r
}

func TestProject_CenterLandsMidScreen(t *testing.T) {
	r := testRenderer(120, 40)

	pr, ok := r.project(vmath.Vec3{X: 0, Y: camY, Z: 0}, 1, 0)
	if !ok {
		t.Fatal("scene center must be visible")
	}
	if math.Abs(pr.cx-60) > 1e-9 {
		t.Errorf("cx = %g, want 60", pr.cx)
	}
	viewH := float64(40 - hudRows)
	if math.Abs(pr.cy-viewH/2) > 1e-9 {
		t.Errorf("cy = %g, want %g", pr.cy, viewH/2)
	}
}

func TestProject_NearIsBigger(t *testing.T) {
	r := testRenderer(120, 40)

	far, ok1 := r.project(vmath.Vec3{Z: -20}, 1, 0)
	near, ok2 := r.project(vmath.Vec3{Z: 35}, 1, 0)
	if !ok1 || !ok2 {
		t.Fatal("both points should project")
	}
	if near.extent <= far.extent {
		t.Errorf("near extent %g should exceed far extent %g", near.extent, far.extent)
	}
	if near.depth >= far.depth {
		t.Errorf("near depth %g should be smaller than far depth %g", near.depth, far.depth)
	}
}

func TestProject_BehindCameraCulled(t *testing.T) {
	r := testRenderer(120, 40)
	if _, ok := r.project(vmath.Vec3{Z: camZ + 1}, 1, 0); ok {
		t.Error("points behind the camera must be culled")
	}
}

func TestThumb_AverageColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := color.RGBA{A: 255}
			if x < 8 {
				c.R = 255
			} else {
				c.B = 255
			}
			img.Set(x, y, c)
		}
	}

	th := newThumb(img)
	lr, lg, lb := th.at(0.1, 0.5).RGB()
	if lr < 250 || lg > 5 || lb > 5 {
		t.Errorf("left half should be red, got %d,%d,%d", lr, lg, lb)
	}
	rr, _, rb := th.at(0.9, 0.5).RGB()
	if rb < 250 || rr > 5 {
		t.Errorf("right half should be blue, got %d,_,%d", rr, rb)
	}
}

func TestThumb_NilImageFallback(t *testing.T) {
	th := newThumb(nil)
	r, g, b := th.at(0.5, 0.5).RGB()
	if r == 0 && g == 0 && b == 0 {
		t.Error("nil image should yield a visible placeholder color")
	}
}

func TestThumb_AtClamps(t *testing.T) {
	th := newThumb(nil)
	// Out-of-range coordinates must not panic
	_ = th.at(-0.5, 2.0)
	_ = th.at(1.0, 1.0)
}
