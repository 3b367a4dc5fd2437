package gesture

import (
	"math"

	"github.com/lixenwraith/tannenbaum/scene"
)

// Classification thresholds, in normalized frame units.
// The dead band between extTree and extScatter is deliberate
// hysteresis: a half-open hand requests nothing, so the mode does not
// flicker at the boundary
const (
	pinchFocus = 0.05
	extTree    = 0.25
	extScatter = 0.40
)

// Interpreter derives continuous pointer coordinates and discrete mode
// requests from landmark frames. All state is overwritten per distinct
// video frame; a duplicate timestamp is a silent no-op
type Interpreter struct {
	pointerX  float64
	pointerY  float64
	lastStamp float64
	primed    bool
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Pointer returns the last derived pointer coordinates, each in [-1, 1].
// Zero (centered) until the first usable frame arrives
func (in *Interpreter) Pointer() (x, y float64) {
	return in.pointerX, in.pointerY
}

// Sample processes one detection frame and returns a requested mode.
// ok is false when no transition is requested: duplicate frame,
// ambiguous hand count, or extension inside the hysteresis band
func (in *Interpreter) Sample(f *Frame) (mode scene.Mode, ok bool) {
	if f == nil {
		return 0, false
	}
	if in.primed && f.Stamp == in.lastStamp {
		return 0, false
	}
	in.primed = true
	in.lastStamp = f.Stamp

	// Exactly one hand with a full landmark set; anything else leaves
	// the previous gesture state standing
	if len(f.Hands) != 1 || len(f.Hands[0]) < LandmarkCount {
		return 0, false
	}
	hand := f.Hands[0]

	palm := hand[LmPalm]
	in.pointerX = (palm.X - 0.5) * 2
	in.pointerY = (palm.Y - 0.5) * 2

	pinch := planarDist(hand[LmThumbTip], hand[LmIndexTip])
	ext := avgExtension(hand)

	// Pinch wins over any extension reading
	switch {
	case pinch < pinchFocus:
		return scene.ModeFocus, true
	case ext < extTree:
		return scene.ModeTree, true
	case ext > extScatter:
		return scene.ModeScatter, true
	}
	return 0, false
}

// avgExtension is the mean planar wrist-to-fingertip distance over the
// four non-thumb fingers, a proxy for how open the hand is
func avgExtension(hand Hand) float64 {
	wrist := hand[LmWrist]
	tips := [4]int{LmIndexTip, LmMiddleTip, LmRingTip, LmPinkyTip}
	sum := 0.0
	for _, tip := range tips {
		sum += planarDist(wrist, hand[tip])
	}
	return sum / 4
}

func planarDist(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
