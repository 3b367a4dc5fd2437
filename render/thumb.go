package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// thumbGrid is the sampled resolution of a photo. Terminal cells are
// coarse; an 8x8 average-color grid survives any blow-up the focus
// mode asks for
const thumbGrid = 8

// thumb is a photo reduced to a fixed grid of averaged cell colors,
// computed once at first draw and cached by particle id
type thumb struct {
	colors [thumbGrid][thumbGrid]tcell.Color
}

func newThumb(img image.Image) *thumb {
	t := &thumb{}
	if img == nil {
		for y := range t.colors {
			for x := range t.colors[y] {
				t.colors[y][x] = tcell.NewRGBColor(90, 90, 100)
			}
		}
		return t
	}

	b := img.Bounds()
	cw := b.Dx() / thumbGrid
	ch := b.Dy() / thumbGrid
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}

	for gy := 0; gy < thumbGrid; gy++ {
		for gx := 0; gx < thumbGrid; gx++ {
			x0 := b.Min.X + gx*cw
			y0 := b.Min.Y + gy*ch
			var sr, sg, sb, n uint64
			for y := y0; y < y0+ch && y < b.Max.Y; y++ {
				for x := x0; x < x0+cw && x < b.Max.X; x++ {
					cr, cg, cb, _ := img.At(x, y).RGBA()
					sr += uint64(cr >> 8)
					sg += uint64(cg >> 8)
					sb += uint64(cb >> 8)
					n++
				}
			}
			if n == 0 {
				n = 1
			}
			t.colors[gy][gx] = tcell.NewRGBColor(
				int32(sr/n), int32(sg/n), int32(sb/n))
		}
	}
	return t
}

// at samples the grid at normalized coordinates u, v in [0, 1]
func (t *thumb) at(u, v float64) tcell.Color {
	gx := int(u * thumbGrid)
	gy := int(v * thumbGrid)
	if gx >= thumbGrid {
		gx = thumbGrid - 1
	}
	if gy >= thumbGrid {
		gy = thumbGrid - 1
	}
	if gx < 0 {
		gx = 0
	}
	if gy < 0 {
		gy = 0
	}
	return t.colors[gy][gx]
}
