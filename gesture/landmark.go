// Package gesture turns raw hand-landmark frames into pointer
// coordinates and mode requests. Detection itself is external; this
// package only consumes normalized keypoints.
package gesture

// Landmark indices into the 21-point hand model
const (
	LmWrist     = 0
	LmThumbTip  = 4
	LmIndexTip  = 8
	LmPalm      = 9 // middle-finger knuckle, stable palm center
	LmMiddleTip = 12
	LmRingTip   = 16
	LmPinkyTip  = 20

	LandmarkCount = 21
)

// Landmark is one normalized hand keypoint. X and Y are in [0, 1]
// relative to the video frame; Z is depth relative to the wrist and
// unused here
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Hand is one detected hand's ordered landmark list (>= 21 entries)
type Hand []Landmark

// Frame is one video frame's detection result
// Stamp is the source video timestamp in milliseconds; the interpreter
// uses it only to skip frames it has already processed
type Frame struct {
	Stamp float64 `json:"t"`
	Hands []Hand  `json:"hands"`
}

// Source supplies the most recent detection frame, or nil when none is
// available yet. Implementations are free to return the same frame
// repeatedly; the interpreter deduplicates by timestamp
type Source interface {
	Latest() *Frame
	Close() error
}
