package track

import (
	"github.com/lixenwraith/tannenbaum/gesture"
)

// Script replays a fixed frame sequence, one frame per Latest call.
// With Loop set it wraps around forever, which makes a tracker-less
// demo cycle through the scene modes on its own
type Script struct {
	frames []gesture.Frame
	idx    int

	// Loop restarts the sequence after the last frame, re-stamping
	// frames so the interpreter's duplicate guard never trips
	Loop bool

	stampBase float64
}

func NewScript(frames []gesture.Frame) *Script {
	return &Script{frames: frames}
}

func (s *Script) Latest() *gesture.Frame {
	if len(s.frames) == 0 {
		return nil
	}
	if s.idx >= len(s.frames) {
		if !s.Loop {
			f := s.frames[len(s.frames)-1]
			f.Stamp += s.stampBase
			return &f
		}
		s.idx = 0
		s.stampBase += s.frames[len(s.frames)-1].Stamp + 1
	}
	f := s.frames[s.idx]
	f.Stamp += s.stampBase
	s.idx++
	return &f
}

func (s *Script) Close() error {
	return nil
}

// DemoLoop is a canned choreography: hold the tree, fan the hand open,
// tumble for a while, pinch onto a photo, then close the fist back to
// the tree. Stamps are spaced as if the tracker ran at ~30 fps with
// each pose held for the given number of frames
func DemoLoop(hold int) *Script {
	poses := []struct{ pinch, ext float64 }{
		{0.20, 0.20}, // fist: tree
		{0.30, 0.50}, // open: scatter
		{0.02, 0.30}, // pinch: focus
	}
	frames := make([]gesture.Frame, 0, len(poses)*hold)
	stamp := 0.0
	for _, pose := range poses {
		for i := 0; i < hold; i++ {
			frames = append(frames, poseFrame(stamp, pose.pinch, pose.ext))
			stamp += 33.0
		}
	}
	s := NewScript(frames)
	s.Loop = true
	return s
}

// poseFrame synthesizes a plausible single-hand frame with the wrist
// centered, fingertips at distance ext and the thumb tip at distance
// pinch from the index tip
func poseFrame(stamp, pinch, ext float64) gesture.Frame {
	hand := make(gesture.Hand, gesture.LandmarkCount)
	for i := range hand {
		hand[i] = gesture.Landmark{X: 0.5, Y: 0.5}
	}
	for _, tip := range []int{gesture.LmIndexTip, gesture.LmMiddleTip, gesture.LmRingTip, gesture.LmPinkyTip} {
		hand[tip] = gesture.Landmark{X: 0.5 + ext, Y: 0.5}
	}
	hand[gesture.LmThumbTip] = gesture.Landmark{X: 0.5 + ext - pinch, Y: 0.5}
	return gesture.Frame{Stamp: stamp, Hands: []gesture.Hand{hand}}
}
